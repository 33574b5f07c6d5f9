package services

import "errors"

var (
	// ErrNotFound is returned when the requested resource does not exist,
	// or exists but is not visible to the caller.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidCredentials is returned by Login when the shared secret
	// does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidFileType is returned when an uploaded file is not one of
	// the accepted image formats.
	ErrInvalidFileType = errors.New("unsupported file type")

	// ErrFileTooLarge is returned when an upload exceeds the size limit.
	ErrFileTooLarge = errors.New("file too large")

	// ErrDriveNotConnected is returned by Drive operations before the
	// OAuth flow has been completed.
	ErrDriveNotConnected = errors.New("google drive not connected")
)
