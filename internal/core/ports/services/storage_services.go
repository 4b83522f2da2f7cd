package services

import (
	"context"
	"io"
)

// UploadInput carries one object to store.
type UploadInput struct {
	Reader      io.Reader
	Size        int64
	ContentType string
	Folder      string
	MemberID    string
	Filename    string
}

// StoredObject is the outcome of a successful upload.
type StoredObject struct {
	Key string
	URL string
}

// ObjectStorageSvc defines the object storage operations used for payment
// attachments.
type ObjectStorageSvc interface {
	// Upload stores an object under a date-partitioned key and returns its
	// public URL.
	Upload(ctx context.Context, in UploadInput) (*StoredObject, error)

	// Remove deletes an object by key.
	Remove(ctx context.Context, key string) error

	// KeyFromURL extracts the object key from a public URL previously
	// returned by Upload. Empty when the URL is not one of ours.
	KeyFromURL(url string) string
}
