// Package storage abstracts where uploaded crop images live.
//
// Two drivers ship out of the box:
//   - "local": local filesystem under STORAGE_LOCAL_ROOT (default)
//   - "s3": S3-compatible object storage (AWS S3, MinIO, R2, Spaces)
//
// The upload endpoint writes through the default disk and returns the
// resulting public URL:
//
//	storage.Connect()
//	err := storage.PutStream("crops/1699-photo.jpg", file)
//	url := storage.URL("crops/1699-photo.jpg")
package storage

import "io"

// Disk is the filesystem driver interface.
type Disk interface {
	// Put writes content to path, creating parents as needed.
	Put(path string, content []byte) error

	// PutStream writes from r to path.
	PutStream(path string, r io.Reader) error

	// Get returns the full content of the file at path.
	Get(path string) ([]byte, error)

	// GetStream returns a ReadCloser for the file. Caller must close it.
	GetStream(path string) (io.ReadCloser, error)

	// Exists reports whether a file exists at path.
	Exists(path string) bool

	// Size returns the byte size of the file.
	Size(path string) (int64, error)

	// Delete removes a file. Returns nil if the file did not exist.
	Delete(path string) error

	// URL returns the public URL for path.
	URL(path string) string
}
