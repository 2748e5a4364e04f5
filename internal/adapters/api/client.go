package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"pxl/internal/core/domain"
	"pxl/internal/core/ports"
)

// DefaultBaseURL is the backend origin used when none is configured.
const DefaultBaseURL = "http://localhost:8000"

// ErrUnauthorized marks a rejected or missing bearer token. Callers
// clear the stored token and point the user at login.
var ErrUnauthorized = errors.New("session expired or invalid")

// Client is the REST adapter over the image host backend. It implements
// ports.FileService and ports.AccountService.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     *zap.Logger
}

// New creates a client for the given backend origin. token may be
// empty for unauthenticated calls (login, public viewer endpoints).
func New(baseURL, token string, log *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 60 * time.Second},
		log:     log,
	}
}

// BaseURL returns the configured backend origin.
func (c *Client) BaseURL() string { return c.baseURL }

// ShareURL builds the public share link for a stored filename.
func (c *Client) ShareURL(filename string) string {
	return c.baseURL + "/img/" + filename
}

// apiError is the backend's error envelope; detail is passed through
// to the user when present.
type apiError struct {
	Detail string `json:"detail"`
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

// do executes the request and maps non-2xx statuses onto errors,
// surfacing the backend's detail message when one is supplied.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("request failed",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Error(err))
		return nil, fmt.Errorf("request to %s failed: %w", req.URL.Path, err)
	}

	c.log.Debug("request",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	defer resp.Body.Close()
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrUnauthorized
	}

	var apiErr apiError
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Detail != "" {
		return nil, fmt.Errorf("%s %s: %s", req.Method, req.URL.Path, apiErr.Detail)
	}
	return nil, fmt.Errorf("%s %s: unexpected status %d", req.Method, req.URL.Path, resp.StatusCode)
}

// getJSON fetches path and decodes the response body into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(out)
}

// sendJSON issues a request with a JSON body, discarding the response.
func (c *Client) sendJSON(ctx context.Context, method, path string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := c.newRequest(ctx, method, path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// --- ports.FileService ---

// List fetches the authenticated user's file records.
func (c *Client) List(ctx context.Context) ([]domain.FileRecord, error) {
	var files []domain.FileRecord
	if err := c.getJSON(ctx, "/files", &files); err != nil {
		return nil, err
	}
	return files, nil
}

// Upload sends one file as a single multipart request.
func (c *Client) Upload(ctx context.Context, upReq ports.UploadRequest) (*ports.UploadResult, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename=%q`, upReq.Filename))
	header.Set("Content-Type", upReq.ContentType)
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, upReq.Data); err != nil {
		return nil, fmt.Errorf("failed to buffer upload body: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/upload", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if upReq.URLLength > 0 {
		req.Header.Set("X-URL-Length", strconv.Itoa(upReq.URLLength))
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body struct {
		File domain.FileRecord `json:"file"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode upload response: %w", err)
	}

	return &ports.UploadResult{
		File:     body.File,
		ShareURL: c.ShareURL(body.File.Filename),
	}, nil
}

// Delete removes one file.
func (c *Client) Delete(ctx context.Context, id int64) error {
	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("/files/%d", id), nil)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// Wipe removes every file owned by the user.
func (c *Client) Wipe(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/files/wipe", nil)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// Export streams the user's zip archive into w.
func (c *Client) Export(ctx context.Context, w io.Writer) (int64, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/files/export", nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return io.Copy(w, resp.Body)
}

// Info fetches public file metadata; no auth required.
func (c *Client) Info(ctx context.Context, id int64) (*domain.FileRecord, error) {
	var f domain.FileRecord
	if err := c.getJSON(ctx, fmt.Sprintf("/files/%d/info", id), &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Download streams the raw image bytes into w; no auth required.
func (c *Client) Download(ctx context.Context, id int64, w io.Writer) (int64, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/files/%d/view", id), nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return io.Copy(w, resp.Body)
}

// --- ports.AccountService ---

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", err
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/login", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var body struct {
		AccessToken string `json:"access_token"`
		Token       string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode login response: %w", err)
	}
	token := body.AccessToken
	if token == "" {
		token = body.Token
	}
	if token == "" {
		return "", fmt.Errorf("login response carried no token")
	}
	return token, nil
}

// Me validates the session and returns the profile behind it.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var u domain.User
	if err := c.getJSON(ctx, "/users/me", &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Sessions lists active login sessions.
func (c *Client) Sessions(ctx context.Context) ([]domain.Session, error) {
	var sessions []domain.Session
	if err := c.getJSON(ctx, "/sessions", &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// TerminateSession revokes one session by token.
func (c *Client) TerminateSession(ctx context.Context, token string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/sessions/"+token, nil)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// UpdateProfile changes the display name and email.
func (c *Client) UpdateProfile(ctx context.Context, name, email string) error {
	return c.sendJSON(ctx, http.MethodPut, "/profile", map[string]string{
		"name":  name,
		"email": email,
	})
}

// ChangePassword rotates the account password.
func (c *Client) ChangePassword(ctx context.Context, current, updated string) error {
	return c.sendJSON(ctx, http.MethodPost, "/change-password", map[string]string{
		"current_password": current,
		"new_password":     updated,
	})
}
