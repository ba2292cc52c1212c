package test

import (
	"context"

	"github.com/Amarhadpad/artistgrade/internal/adapter/media"
	"github.com/Amarhadpad/artistgrade/internal/domain/model"
)

// MediaClientStub simulates the image hosting client.
type MediaClientStub struct {
	UploadFn func(context.Context, string, string, []byte) (*model.MediaAsset, error)
	ListFn   func(context.Context) ([]model.MediaAsset, error)
	Assets   []model.MediaAsset
	Err      error

	Uploads []string
}

// Upload records the filename and returns a configured asset.
func (s *MediaClientStub) Upload(ctx context.Context, filename, contentType string, data []byte) (*model.MediaAsset, error) {
	if s.UploadFn != nil {
		return s.UploadFn(ctx, filename, contentType, data)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.Uploads = append(s.Uploads, filename)
	return &model.MediaAsset{URL: "https://cdn.example.com/" + filename, PublicID: "shop/" + filename}, nil
}

// List returns configured assets.
func (s *MediaClientStub) List(ctx context.Context) ([]model.MediaAsset, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Assets, nil
}

var _ media.Client = &MediaClientStub{}
