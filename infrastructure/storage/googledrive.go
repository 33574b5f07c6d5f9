package storage

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/drive/v3"

	"gallery-api/domain/models"
	"gallery-api/domain/repositories"
	"gallery-api/infrastructure/googledrive"
	"gallery-api/pkg/config"
	"gallery-api/pkg/logger"
)

// refreshWindow is how close to expiry an access token must be before a
// refresh is attempted.
const refreshWindow = 5 * time.Minute

// GoogleDriveProvider stores files in the connected Google Drive account,
// grouped under <rootFolder>/<primaryTag>/.
type GoogleDriveProvider struct {
	client     *googledrive.DriveClient
	tokens     repositories.DriveTokenRepository
	rootFolder string
}

func NewGoogleDriveProvider(cfg config.GoogleDriveConfig, client *googledrive.DriveClient, tokens repositories.DriveTokenRepository) (*GoogleDriveProvider, error) {
	if err := client.ValidateConfig(); err != nil {
		return nil, err
	}

	return &GoogleDriveProvider{
		client:     client,
		tokens:     tokens,
		rootFolder: cfg.RootFolder,
	}, nil
}

func (p *GoogleDriveProvider) Name() string {
	return "googledrive"
}

func (p *GoogleDriveProvider) Upload(ctx context.Context, in UploadInput) (*UploadResult, error) {
	srv, err := p.service(ctx)
	if err != nil {
		return nil, err
	}

	rootID, err := p.client.EnsureFolder(ctx, srv, p.rootFolder, "")
	if err != nil {
		return nil, err
	}

	folderID := rootID
	if in.PrimaryTag != "" {
		folderID, err = p.client.EnsureFolder(ctx, srv, in.PrimaryTag, rootID)
		if err != nil {
			return nil, err
		}
	}

	fileID, err := p.client.UploadFile(ctx, srv, folderID, in.Filename, in.MimeType, in.Data)
	if err != nil {
		return nil, err
	}

	return &UploadResult{
		Key:  fileID,
		URL:  googledrive.ViewURL(fileID),
		Size: int64(len(in.Data)),
	}, nil
}

func (p *GoogleDriveProvider) Fetch(ctx context.Context, key string) ([]byte, error) {
	srv, err := p.service(ctx)
	if err != nil {
		return nil, err
	}
	return p.client.DownloadFile(ctx, srv, key)
}

func (p *GoogleDriveProvider) Delete(ctx context.Context, key string) error {
	srv, err := p.service(ctx)
	if err != nil {
		return err
	}
	return p.client.DeleteFile(ctx, srv, key)
}

// service builds an authenticated Drive service from the stored token,
// refreshing it first when it is about to expire.
func (p *GoogleDriveProvider) service(ctx context.Context) (*drive.Service, error) {
	token, err := p.validToken(ctx)
	if err != nil {
		return nil, err
	}
	return p.client.GetDriveService(ctx, token.AccessToken, token.RefreshToken, token.Expiry)
}

// validToken returns the stored token, refreshing it when less than
// refreshWindow remains. When the refresh call fails the stale token is
// returned anyway; the Drive API gets the final say on whether it still
// works.
func (p *GoogleDriveProvider) validToken(ctx context.Context) (*models.DriveToken, error) {
	token, err := p.tokens.Get(ctx)
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil, fmt.Errorf("google drive is not connected")
		}
		return nil, err
	}

	if time.Until(token.Expiry) > refreshWindow || token.RefreshToken == "" {
		return token, nil
	}

	refreshed, err := p.client.RefreshToken(ctx, token.RefreshToken)
	if err != nil {
		logger.DriveError("token_refresh", "Token refresh failed, using stored token", err, map[string]interface{}{
			"expiry": token.Expiry,
		})
		return token, nil
	}

	token.AccessToken = refreshed.AccessToken
	token.RefreshToken = refreshed.RefreshToken
	token.TokenType = refreshed.TokenType
	token.Expiry = refreshed.Expiry

	if err := p.tokens.Save(ctx, token); err != nil {
		logger.DriveError("token_refresh", "Failed to persist refreshed token", err, nil)
	}

	return token, nil
}
