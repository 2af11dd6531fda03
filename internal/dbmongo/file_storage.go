package dbmongo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"agilefinance/internal/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FileStorage implements common.FileStore on top of GridFS.
type FileStorage struct {
	gridFS *gridfs.Bucket
}

func NewFileStorage(mongoClient *MongoClient) *FileStorage {
	return &FileStorage{
		gridFS: mongoClient.GridFS,
	}
}

func (fs *FileStorage) Upload(ctx context.Context, filename, mimeType, uploaderID string, content io.Reader) (*common.StoredFile, error) {
	contentType := common.DetectContentType(mimeType)
	uploadedAt := time.Now().UTC()

	metadata := bson.M{
		"content_type": contentType.String(),
		"mime_type":    mimeType,
		"uploaded_by":  uploaderID,
		"uploaded_at":  uploadedAt,
	}

	opts := options.GridFSUpload().SetMetadata(metadata)
	stream, err := fs.gridFS.OpenUploadStream(filename, opts)
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}

	size, err := io.Copy(stream, content)
	if err != nil {
		_ = stream.Abort()
		return nil, fmt.Errorf("file copy failed: %w", err)
	}
	if err := stream.Close(); err != nil {
		return nil, fmt.Errorf("upload close failed: %w", err)
	}

	return &common.StoredFile{
		ID:          stream.FileID.(primitive.ObjectID).Hex(),
		Filename:    filename,
		MimeType:    mimeType,
		Size:        size,
		ContentType: contentType,
		UploadedBy:  uploaderID,
		UploadedAt:  uploadedAt,
	}, nil
}

func (fs *FileStorage) Download(ctx context.Context, fileID string) (io.ReadCloser, *common.StoredFile, error) {
	objectID, err := parseFileID(fileID)
	if err != nil {
		return nil, nil, err
	}

	stream, err := fs.gridFS.OpenDownloadStream(objectID)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, nil, common.ErrNotFound
		}
		return nil, nil, fmt.Errorf("download failed: %w", err)
	}

	fileInfo := stream.GetFile()
	var metadata bson.M
	if fileInfo.Metadata != nil {
		_ = bson.Unmarshal(fileInfo.Metadata, &metadata)
	}

	return stream, &common.StoredFile{
		ID:          fileID,
		Filename:    fileInfo.Name,
		MimeType:    getStringFromMap(metadata, "mime_type"),
		Size:        fileInfo.Length,
		ContentType: common.ContentType(getStringFromMap(metadata, "content_type")),
		UploadedBy:  getStringFromMap(metadata, "uploaded_by"),
		UploadedAt:  fileInfo.UploadDate,
	}, nil
}

func (fs *FileStorage) Delete(ctx context.Context, fileID string) error {
	objectID, err := parseFileID(fileID)
	if err != nil {
		return err
	}
	if err := fs.gridFS.Delete(objectID); err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return common.ErrNotFound
		}
		return err
	}
	return nil
}

func parseFileID(fileID string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return primitive.NilObjectID, common.NewValidationError("fileId", "invalid file id")
	}
	return objectID, nil
}

func getStringFromMap(m bson.M, key string) string {
	if m == nil {
		return ""
	}
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}
