package provider

import (
	"context"
	"io"
)

// UploadInput describes a media object to store.
type UploadInput struct {
	Body        io.Reader
	ContentType string
	Folder      string
	Filename    string
}

// MediaStorage abstracts the media hosting boundary. Upload returns the
// public URL of the stored object; Delete takes a previously issued URL.
type MediaStorage interface {
	Upload(ctx context.Context, in *UploadInput) (string, error)
	Delete(ctx context.Context, publicURL string) error
}
