package common

import (
	"context"
	"io"
	"time"
)

// Emitter fans an event out to every socket joined to a room. Delivery is
// best effort; nobody listening means the event is dropped.
type Emitter interface {
	Emit(room, event string, data interface{})
}

type FileStore interface {
	Upload(ctx context.Context, filename, mimeType, uploaderID string, content io.Reader) (*StoredFile, error)
	Download(ctx context.Context, fileID string) (io.ReadCloser, *StoredFile, error)
	Delete(ctx context.Context, fileID string) error
}

type StoredFile struct {
	ID          string      `json:"id"`
	Filename    string      `json:"filename"`
	MimeType    string      `json:"mimeType"`
	Size        int64       `json:"size"`
	ContentType ContentType `json:"contentType"`
	UploadedBy  string      `json:"uploadedBy"`
	UploadedAt  time.Time   `json:"uploadedAt"`
}
