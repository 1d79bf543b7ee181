package storage

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"time"

	apperrors "pg-management-backend/internal/errors"
)

//go:generate mockgen -source=storage.go -destination=../mocks/storage_mocks.go -package=mocks

// DocumentStore persists uploaded tenant documents and returns a URL for them
type DocumentStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
}

// DisabledStore is used when no bucket is configured
type DisabledStore struct{}

// Put always fails with ErrDocumentStorageDisabled
func (DisabledStore) Put(context.Context, string, string, io.Reader, int64) (string, error) {
	return "", apperrors.ErrDocumentStorageDisabled
}

// DocumentKey builds the object key for an uploaded file:
// documents/document-<unixMillis>-<random>-<originalName>
func DocumentKey(originalName string, now time.Time) string {
	name := filepath.Base(strings.ReplaceAll(originalName, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "upload"
	}
	name = strings.ReplaceAll(name, " ", "_")
	return fmt.Sprintf("documents/document-%d-%d-%s", now.UnixMilli(), rand.IntN(1_000_000_000), name)
}
