package serviceimpl

import (
	"context"
	"errors"
	"time"

	"gallery-api/domain/dto"
	"gallery-api/domain/models"
	"gallery-api/domain/repositories"
	"gallery-api/domain/services"
	"gallery-api/infrastructure/googledrive"
	"gallery-api/pkg/logger"
)

type DriveServiceImpl struct {
	client    *googledrive.DriveClient
	tokenRepo repositories.DriveTokenRepository
}

func NewDriveService(client *googledrive.DriveClient, tokenRepo repositories.DriveTokenRepository) services.DriveService {
	return &DriveServiceImpl{
		client:    client,
		tokenRepo: tokenRepo,
	}
}

func (s *DriveServiceImpl) AuthURL(state string) string {
	return s.client.GetAuthURL(state)
}

func (s *DriveServiceImpl) HandleCallback(ctx context.Context, code string) error {
	info, err := s.client.ExchangeCode(ctx, code)
	if err != nil {
		logger.DriveError("oauth_callback", "Code exchange failed", err, nil)
		return err
	}

	token := &models.DriveToken{
		AccessToken:  info.AccessToken,
		RefreshToken: info.RefreshToken,
		TokenType:    info.TokenType,
		Expiry:       info.Expiry,
	}
	if err := s.tokenRepo.Save(ctx, token); err != nil {
		return err
	}

	logger.Drive("oauth_callback", "Google Drive connected", map[string]interface{}{
		"expiry": info.Expiry,
	})
	return nil
}

func (s *DriveServiceImpl) Status(ctx context.Context) (*dto.DriveStatusResponse, error) {
	token, err := s.tokenRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return &dto.DriveStatusResponse{Connected: false}, nil
		}
		return nil, err
	}

	expiry := token.Expiry
	return &dto.DriveStatusResponse{
		Connected:   true,
		Expiry:      &expiry,
		ExpiresSoon: time.Until(expiry) < 5*time.Minute,
	}, nil
}

func (s *DriveServiceImpl) Disconnect(ctx context.Context) error {
	if err := s.tokenRepo.Delete(ctx); err != nil {
		return err
	}
	logger.Drive("disconnect", "Google Drive disconnected", nil)
	return nil
}
