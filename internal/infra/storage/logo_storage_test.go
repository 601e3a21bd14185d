package storage

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/fileblob"
)

func newTestStorage(t *testing.T) *blobLogoStorage {
	t.Helper()

	dir := t.TempDir()
	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{CreateDir: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	return &blobLogoStorage{
		bucket:        bucket,
		publicBaseURL: "https://cdn.bazaar.example.com",
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestBlobLogoStorage_StoreLogo(t *testing.T) {
	storage := newTestStorage(t)
	shopID := uuid.New()
	data := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

	url, err := storage.StoreLogo(context.Background(), shopID, "image/png", data)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.bazaar.example.com/shops/"+shopID.String()+"/logo.png", url)

	reader, err := storage.bucket.NewReader(context.Background(), "shops/"+shopID.String()+"/logo.png", nil)
	require.NoError(t, err)
	defer reader.Close()

	stored, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, data, stored)
}

func TestBlobLogoStorage_StoreLogo_OverwritesPrevious(t *testing.T) {
	storage := newTestStorage(t)
	shopID := uuid.New()

	_, err := storage.StoreLogo(context.Background(), shopID, "image/png", []byte("first"))
	require.NoError(t, err)

	url, err := storage.StoreLogo(context.Background(), shopID, "image/png", []byte("second"))
	require.NoError(t, err)

	reader, err := storage.bucket.NewReader(context.Background(), "shops/"+shopID.String()+"/logo.png", nil)
	require.NoError(t, err)
	defer reader.Close()

	stored, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), stored)
	assert.Contains(t, url, shopID.String())
}

func TestBlobLogoStorage_StoreLogo_EmptyData(t *testing.T) {
	storage := newTestStorage(t)

	_, err := storage.StoreLogo(context.Background(), uuid.New(), "image/png", nil)
	assert.ErrorContains(t, err, "empty")
}

func TestBlobLogoStorage_StoreLogo_ContentTypeExtensions(t *testing.T) {
	tests := []struct {
		contentType string
		wantSuffix  string
	}{
		{"image/png", "/logo.png"},
		{"image/jpeg", "/logo.jpg"},
		{"image/webp", "/logo.webp"},
		{"application/octet-stream", "/logo"},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			storage := newTestStorage(t)

			url, err := storage.StoreLogo(context.Background(), uuid.New(), tt.contentType, []byte("logo"))
			require.NoError(t, err)
			assert.True(t, len(url) > len(tt.wantSuffix))
			assert.Equal(t, tt.wantSuffix, url[len(url)-len(tt.wantSuffix):])
		})
	}
}

func TestBlobLogoStorage_StoreLogo_WritesToDisk(t *testing.T) {
	dir := t.TempDir()
	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{CreateDir: true})
	require.NoError(t, err)
	defer bucket.Close()

	storage := &blobLogoStorage{
		bucket:        bucket,
		publicBaseURL: "http://localhost:8080/logos",
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	shopID := uuid.New()
	_, err = storage.StoreLogo(context.Background(), shopID, "image/png", []byte("logo"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "shops", shopID.String(), "logo.png"))
	assert.NoError(t, err)
}
