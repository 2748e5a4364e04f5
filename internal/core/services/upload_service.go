package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"pxl/internal/core/domain"
	"pxl/internal/core/ports"
)

// MaxFileSize is the per-file upload ceiling (10MB).
const MaxFileSize = 10 * 1024 * 1024

// ErrQuotaExceeded rejects a whole batch before any per-file request
// when current usage plus the batch would overflow the storage quota.
var ErrQuotaExceeded = errors.New("upload would exceed the storage quota")

// allowedTypes is the client-side MIME allow-list.
var allowedTypes = map[string]bool{
	"image/png":     true,
	"image/jpeg":    true,
	"image/jpg":     true,
	"image/gif":     true,
	"image/svg+xml": true,
}

// ItemState is the terminal state of one batch item.
type ItemState int

const (
	ItemUploaded ItemState = iota
	ItemSkipped
	ItemFailed
)

// ItemResult reports the outcome of one file in an upload batch.
type ItemResult struct {
	Path     string
	Name     string
	Size     int64
	State    ItemState
	Reason   string // why the item was skipped or failed
	ShareURL string // set on success
}

// ProgressFunc observes each item as it finishes. The index is the
// item's position in selection order.
type ProgressFunc func(index int, total int, result ItemResult)

// Uploader runs the client-validated sequential upload pipeline.
type Uploader struct {
	backend  ports.FileService
	settings domain.ClientSettings
}

// NewUploader creates an uploader applying the given client settings.
func NewUploader(backend ports.FileService, settings domain.ClientSettings) *Uploader {
	return &Uploader{backend: backend, settings: settings}
}

// Run uploads the files at paths one at a time, in selection order.
//
// A fresh usage fetch gates the whole batch: if current usage plus the
// sum of the batch sizes would exceed the quota, nothing is uploaded
// and ErrQuotaExceeded is returned. After the gate, items are
// independent: a file failing validation or upload is reported through
// progress and the pipeline moves on. Each accepted file is one atomic
// multipart request; there is no retry and no chunking.
func (u *Uploader) Run(ctx context.Context, paths []string, progress ProgressFunc) ([]ItemResult, error) {
	usage, err := u.currentUsage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve current storage usage: %w", err)
	}

	var batchSize int64
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil {
			batchSize += info.Size()
		}
	}
	if usage+batchSize > QuotaBytes {
		return nil, fmt.Errorf("%w: current usage %.2fMB, batch adds %.2fMB, limit %dMB",
			ErrQuotaExceeded,
			float64(usage)/(1024*1024),
			float64(batchSize)/(1024*1024),
			QuotaMB)
	}

	results := make([]ItemResult, 0, len(paths))
	for i, path := range paths {
		res := u.uploadOne(ctx, path)
		results = append(results, res)
		if progress != nil {
			progress(i, len(paths), res)
		}
	}
	return results, nil
}

func (u *Uploader) uploadOne(ctx context.Context, path string) ItemResult {
	res := ItemResult{Path: path, Name: filepath.Base(path)}

	info, err := os.Stat(path)
	if err != nil {
		res.State = ItemSkipped
		res.Reason = "not found or not accessible"
		return res
	}
	res.Size = info.Size()

	if info.Size() > MaxFileSize {
		res.State = ItemSkipped
		res.Reason = fmt.Sprintf("file too large (max %s)", domain.FormatSize(MaxFileSize))
		return res
	}

	data, err := os.ReadFile(path)
	if err != nil {
		res.State = ItemSkipped
		res.Reason = "unreadable"
		return res
	}

	contentType := DetectImageType(res.Name, data)
	if !allowedTypes[contentType] {
		res.State = ItemSkipped
		res.Reason = fmt.Sprintf("unsupported file type %s", contentType)
		return res
	}

	out, err := u.backend.Upload(ctx, ports.UploadRequest{
		Filename:    res.Name,
		ContentType: contentType,
		Size:        info.Size(),
		Data:        bytes.NewReader(data),
		URLLength:   u.settings.URLLength,
	})
	if err != nil {
		res.State = ItemFailed
		res.Reason = err.Error()
		return res
	}

	res.State = ItemUploaded
	res.ShareURL = out.ShareURL
	return res
}

func (u *Uploader) currentUsage(ctx context.Context) (int64, error) {
	files, err := u.backend.List(ctx)
	if err != nil {
		return 0, err
	}
	var total int64
	for i := range files {
		total += files[i].FileSize
	}
	return total, nil
}

// DetectImageType resolves a file's MIME type from its contents, with
// the extension as a tiebreaker for formats content sniffing cannot
// identify (SVG detects as generic XML or text).
func DetectImageType(name string, data []byte) string {
	sniffed := http.DetectContentType(data)
	if allowedTypes[sniffed] {
		return sniffed
	}

	ext := strings.ToLower(filepath.Ext(name))
	if ext == ".svg" {
		return "image/svg+xml"
	}
	if byExt := mime.TypeByExtension(ext); byExt != "" {
		// Strip any charset parameter.
		if i := strings.Index(byExt, ";"); i >= 0 {
			byExt = byExt[:i]
		}
		return byExt
	}
	return sniffed
}
