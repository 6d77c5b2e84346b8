package repository

import (
	"context"
	"io"
)

// StorageRepository is the external file-hosting collaborator that keeps
// the submitted assignment files. Metadata stays in the document store;
// only the bytes live here.
type StorageRepository interface {
	Upload(ctx context.Context, key string, data io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error

	// ObjectURL is the in-browser viewable link for an uploaded object.
	ObjectURL(key string) string

	// DownloadURL is the same object served with a forced attachment
	// disposition.
	DownloadURL(key string) string
}
