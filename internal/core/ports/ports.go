package ports

import (
	"context"
	"io"

	"pxl/internal/core/domain"
)

// UploadRequest carries one file to the backend's multipart endpoint.
type UploadRequest struct {
	Filename    string
	ContentType string
	Size        int64
	Data        io.Reader

	// URLLength is forwarded as the X-URL-Length header when non-zero.
	URLLength int
}

// UploadResult is the backend's response to a successful upload.
type UploadResult struct {
	File     domain.FileRecord
	ShareURL string
}

// FileService defines the port for the backend's file registry.
type FileService interface {
	// List returns all files owned by the authenticated user.
	List(ctx context.Context) ([]domain.FileRecord, error)

	// Upload sends one file as a single atomic multipart request.
	Upload(ctx context.Context, req UploadRequest) (*UploadResult, error)

	// Delete removes one file by id.
	Delete(ctx context.Context, id int64) error

	// Wipe removes every file owned by the authenticated user.
	Wipe(ctx context.Context) error

	// Export streams a zip archive of all files into w.
	Export(ctx context.Context, w io.Writer) (int64, error)

	// Info fetches public metadata for the viewer page. No auth required.
	Info(ctx context.Context, id int64) (*domain.FileRecord, error)

	// Download streams the raw image bytes into w. No auth required.
	Download(ctx context.Context, id int64, w io.Writer) (int64, error)
}

// AccountService defines the port for session and profile operations.
type AccountService interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, email, password string) (string, error)

	// Me validates the stored token and returns the profile behind it.
	Me(ctx context.Context) (*domain.User, error)

	// Sessions lists the user's active login sessions.
	Sessions(ctx context.Context) ([]domain.Session, error)

	// TerminateSession revokes one session by its token.
	TerminateSession(ctx context.Context, token string) error

	// UpdateProfile changes the display name and email.
	UpdateProfile(ctx context.Context, name, email string) error

	// ChangePassword rotates the account password.
	ChangePassword(ctx context.Context, current, updated string) error
}
