// Package storage persists shop logo uploads to a blob bucket.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"bazaar/config"
	"bazaar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

type blobLogoStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params holds dependencies for the logo storage, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewLogoStorage opens the configured blob bucket. The bucket URL decides the
// backend; fileblob serves local development and gcsblob serves production.
func NewLogoStorage(params Params) (service.LogoStorage, error) {
	if params.Config == nil || params.Config.LogoStorage == nil {
		return nil, errors.New("logo storage config is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, params.Config.LogoStorage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open logo bucket")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobLogoStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(params.Config.LogoStorage.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// StoreLogo writes the image bytes under a per-shop key and returns the public
// URL. Re-uploading overwrites the previous logo for the shop.
func (s *blobLogoStorage) StoreLogo(ctx context.Context, shopID uuid.UUID, contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("logo data is empty")
	}

	key := fmt.Sprintf("shops/%s/logo%s", shopID, extensionFor(contentType))

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open logo writer")
	}

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return "", errors.Wrap(err, "failed to write logo")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to commit logo")
	}

	s.logger.Debug("Logo stored",
		slog.String("shopId", shopID.String()),
		slog.String("key", key),
		slog.Int("bytes", len(data)),
	)

	return s.publicBaseURL + "/" + key, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
