package mocks

import (
	"context"
	"fmt"
	"io"
	"sync"

	"pxl/internal/core/domain"
	"pxl/internal/core/ports"
)

// MockFileService is an in-memory implementation of ports.FileService
// for service tests. Set FailList / FailUpload to simulate backend
// failures.
type MockFileService struct {
	mu     sync.RWMutex
	files  map[int64]domain.FileRecord
	nextID int64

	FailList    bool
	FailUpload  bool
	ListCalls   int
	UploadCalls int
}

// NewMockFileService creates an empty mock registry.
func NewMockFileService() *MockFileService {
	return &MockFileService{
		files:  make(map[int64]domain.FileRecord),
		nextID: 1,
	}
}

// Seed inserts a record directly, assigning an id if missing.
func (m *MockFileService) Seed(f domain.FileRecord) domain.FileRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	if f.ID == 0 {
		f.ID = m.nextID
		m.nextID++
	} else if f.ID >= m.nextID {
		m.nextID = f.ID + 1
	}
	m.files[f.ID] = f
	return f
}

// List returns all seeded records.
func (m *MockFileService) List(ctx context.Context) ([]domain.FileRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ListCalls++
	if m.FailList {
		return nil, fmt.Errorf("mock: list failed")
	}

	out := make([]domain.FileRecord, 0, len(m.files))
	for _, f := range m.files {
		out = append(out, f)
	}
	return out, nil
}

// Upload stores the file and returns a record with a synthetic share URL.
func (m *MockFileService) Upload(ctx context.Context, req ports.UploadRequest) (*ports.UploadResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.UploadCalls++
	if m.FailUpload {
		return nil, fmt.Errorf("mock: upload failed")
	}

	data, err := io.ReadAll(req.Data)
	if err != nil {
		return nil, err
	}

	f := domain.FileRecord{
		ID:           m.nextID,
		Filename:     fmt.Sprintf("mock-%d", m.nextID),
		OriginalName: req.Filename,
		FileType:     req.ContentType,
		FileSize:     int64(len(data)),
	}
	m.nextID++
	m.files[f.ID] = f

	return &ports.UploadResult{
		File:     f,
		ShareURL: "http://mock.local/img/" + f.Filename,
	}, nil
}

// Delete removes one record.
func (m *MockFileService) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.files[id]; !ok {
		return fmt.Errorf("mock: file not found: %d", id)
	}
	delete(m.files, id)
	return nil
}

// Wipe removes everything.
func (m *MockFileService) Wipe(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.files = make(map[int64]domain.FileRecord)
	return nil
}

// Export writes a placeholder archive body.
func (m *MockFileService) Export(ctx context.Context, w io.Writer) (int64, error) {
	n, err := w.Write([]byte("mock-archive"))
	return int64(n), err
}

// Info returns one record's metadata.
func (m *MockFileService) Info(ctx context.Context, id int64) (*domain.FileRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	f, ok := m.files[id]
	if !ok {
		return nil, fmt.Errorf("mock: file not found: %d", id)
	}
	return &f, nil
}

// Download writes placeholder image bytes.
func (m *MockFileService) Download(ctx context.Context, id int64, w io.Writer) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.files[id]; !ok {
		return 0, fmt.Errorf("mock: file not found: %d", id)
	}
	n, err := w.Write([]byte("mock-bytes"))
	return int64(n), err
}
