package googledrive

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"gallery-api/pkg/config"
)

const folderMimeType = "application/vnd.google-apps.folder"

// DriveClient handles Google Drive API operations
type DriveClient struct {
	config     *oauth2.Config
	httpClient *http.Client
}

// TokenInfo represents OAuth token information
type TokenInfo struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	Expiry       time.Time
}

// NewDriveClient creates a new Google Drive client. The drive.file scope
// limits access to files this application created.
func NewDriveClient(cfg config.GoogleDriveConfig) *DriveClient {
	oauthConfig := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes:       []string{drive.DriveFileScope},
		Endpoint:     google.Endpoint,
	}

	return &DriveClient{
		config:     oauthConfig,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// GetAuthURL generates the OAuth authorization URL. AccessTypeOffline plus
// ApprovalForce makes Google return a refresh token on every consent.
func (c *DriveClient) GetAuthURL(state string) string {
	return c.config.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// ExchangeCode exchanges an authorization code for tokens
func (c *DriveClient) ExchangeCode(ctx context.Context, code string) (*TokenInfo, error) {
	token, err := c.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}

	return &TokenInfo{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		Expiry:       token.Expiry,
	}, nil
}

// RefreshToken refreshes the access token using the refresh token
func (c *DriveClient) RefreshToken(ctx context.Context, refreshToken string) (*TokenInfo, error) {
	token := &oauth2.Token{
		RefreshToken: refreshToken,
	}

	tokenSource := c.config.TokenSource(ctx, token)
	newToken, err := tokenSource.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}

	info := &TokenInfo{
		AccessToken:  newToken.AccessToken,
		RefreshToken: newToken.RefreshToken,
		TokenType:    newToken.TokenType,
		Expiry:       newToken.Expiry,
	}
	// Google omits the refresh token on refresh responses; keep the old one.
	if info.RefreshToken == "" {
		info.RefreshToken = refreshToken
	}
	return info, nil
}

// GetDriveService creates a Drive service authenticated with the given
// tokens. Extra client options are appended last so tests can override the
// API endpoint.
func (c *DriveClient) GetDriveService(ctx context.Context, accessToken, refreshToken string, expiry time.Time, opts ...option.ClientOption) (*drive.Service, error) {
	token := &oauth2.Token{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		Expiry:       expiry,
	}

	client := c.config.Client(ctx, token)

	clientOpts := append([]option.ClientOption{option.WithHTTPClient(client)}, opts...)
	srv, err := drive.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return srv, nil
}

// EnsureFolder returns the ID of the folder with the given name under
// parentID, creating it only when the search finds nothing. Searching first
// keeps folder creation idempotent across concurrent uploads.
func (c *DriveClient) EnsureFolder(ctx context.Context, srv *drive.Service, name, parentID string) (string, error) {
	query := fmt.Sprintf("mimeType='%s' and name='%s' and trashed=false", folderMimeType, escapeQueryValue(name))
	if parentID != "" {
		query += fmt.Sprintf(" and '%s' in parents", parentID)
	}

	result, err := srv.Files.List().
		Q(query).
		Fields("files(id, name)").
		PageSize(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to search for folder: %w", err)
	}

	if len(result.Files) > 0 {
		return result.Files[0].Id, nil
	}

	folder := &drive.File{
		Name:     name,
		MimeType: folderMimeType,
	}
	if parentID != "" {
		folder.Parents = []string{parentID}
	}

	created, err := srv.Files.Create(folder).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create folder: %w", err)
	}

	return created.Id, nil
}

// UploadFile uploads content into the given folder and makes it readable by
// anyone with the link, so the uc?export=view URL works without auth.
func (c *DriveClient) UploadFile(ctx context.Context, srv *drive.Service, folderID, name, mimeType string, data []byte) (string, error) {
	file := &drive.File{
		Name:     name,
		MimeType: mimeType,
	}
	if folderID != "" {
		file.Parents = []string{folderID}
	}

	created, err := srv.Files.Create(file).
		Media(bytes.NewReader(data)).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	permission := &drive.Permission{
		Type: "anyone",
		Role: "reader",
	}
	if _, err := srv.Permissions.Create(created.Id, permission).Context(ctx).Do(); err != nil {
		return "", fmt.Errorf("failed to set file permission: %w", err)
	}

	return created.Id, nil
}

// DownloadFile downloads a file's content
func (c *DriveClient) DownloadFile(ctx context.Context, srv *drive.Service, fileID string) ([]byte, error) {
	resp, err := srv.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read file content: %w", err)
	}
	return data, nil
}

// DeleteFile permanently removes a file
func (c *DriveClient) DeleteFile(ctx context.Context, srv *drive.Service, fileID string) error {
	if err := srv.Files.Delete(fileID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// ViewURL builds the public view URL for an uploaded file
func ViewURL(fileID string) string {
	return fmt.Sprintf("https://drive.google.com/uc?export=view&id=%s", fileID)
}

// ValidateConfig checks if the configuration is valid
func (c *DriveClient) ValidateConfig() error {
	if c.config.ClientID == "" {
		return fmt.Errorf("GOOGLE_CLIENT_ID is not configured")
	}
	if c.config.ClientSecret == "" {
		return fmt.Errorf("GOOGLE_CLIENT_SECRET is not configured")
	}
	return nil
}

// escapeQueryValue escapes single quotes and backslashes for Drive query
// string literals.
func escapeQueryValue(v string) string {
	out := make([]byte, 0, len(v))
	for i := 0; i < len(v); i++ {
		if v[i] == '\'' || v[i] == '\\' {
			out = append(out, '\\')
		}
		out = append(out, v[i])
	}
	return string(out)
}
