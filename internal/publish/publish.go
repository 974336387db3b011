package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"flow7/internal/landing"
	"flow7/internal/storage"
)

// DefaultIndexKey is the object key / file name of the rendered page.
const DefaultIndexKey = "index.html"

var (
	ErrNoArtifacts = errors.New("no artifacts to publish")
	ErrInvalidKey  = errors.New("invalid artifact key")
)

// Artifact is one file of the static export.
type Artifact struct {
	Key          string
	ContentType  string
	CacheControl string
	Body         []byte
}

// File describes a published artifact.
type File struct {
	Key  string `json:"key"`
	Size int64  `json:"size"`
	ETag string `json:"etag,omitempty"`
}

// Result lists what was published and where.
type Result struct {
	Destination string `json:"destination"`
	Files       []File `json:"files"`
}

// StylesheetKey is the key of the exported stylesheet; the page links to it absolutely.
var StylesheetKey = strings.TrimPrefix(landing.StylesheetPath, "/")

// Artifacts renders the landing page and returns it with its stylesheet.
// The stylesheet comes first so a page is never published before the CSS it links to.
// indexKey defaults to DefaultIndexKey and must not collide with StylesheetKey.
func Artifacts(indexKey string) ([]Artifact, error) {
	if indexKey == "" {
		indexKey = DefaultIndexKey
	}
	if err := validateKey(indexKey); err != nil {
		return nil, err
	}
	if indexKey == StylesheetKey {
		return nil, fmt.Errorf("%w: %q is reserved for the stylesheet", ErrInvalidKey, indexKey)
	}

	page, err := landing.Render()
	if err != nil {
		return nil, err
	}

	return []Artifact{
		{
			Key:          StylesheetKey,
			ContentType:  "text/css; charset=utf-8",
			CacheControl: "public, max-age=3600",
			Body:         landing.Stylesheet(),
		},
		{
			Key:          indexKey,
			ContentType:  "text/html; charset=utf-8",
			CacheControl: "no-cache",
			Body:         page,
		},
	}, nil
}

// validateKey rejects keys that would escape the export root.
func validateKey(key string) error {
	clean := path.Clean(key)
	if key == "" || path.IsAbs(key) || clean != key || clean == "." || strings.HasPrefix(clean, "../") || clean == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

// validateArtifacts checks every key before anything is written.
func validateArtifacts(arts []Artifact) error {
	if len(arts) == 0 {
		return ErrNoArtifacts
	}
	seen := make(map[string]struct{}, len(arts))
	for _, a := range arts {
		if err := validateKey(a.Key); err != nil {
			return err
		}
		if _, dup := seen[a.Key]; dup {
			return fmt.Errorf("%w: duplicate key %q", ErrInvalidKey, a.Key)
		}
		seen[a.Key] = struct{}{}
	}
	return nil
}

// WriteDir writes arts below dir, creating directories as needed.
func WriteDir(dir string, arts []Artifact) (*Result, error) {
	if err := validateArtifacts(arts); err != nil {
		return nil, err
	}

	res := &Result{Destination: dir}
	for _, a := range arts {
		dst := filepath.Join(dir, filepath.FromSlash(a.Key))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return nil, fmt.Errorf("create dir for %s: %w", a.Key, err)
		}
		if err := os.WriteFile(dst, a.Body, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", a.Key, err)
		}
		res.Files = append(res.Files, File{Key: a.Key, Size: int64(len(a.Body))})
	}
	return res, nil
}

// Uploader publishes artifacts to object storage.
type Uploader struct {
	store storage.Storage
}

// NewUploader constructs an Uploader.
func NewUploader(store storage.Storage) *Uploader {
	return &Uploader{store: store}
}

// Upload puts the artifacts in order and stops at the first failure.
// Nothing is deleted on failure: objects already put replaced earlier versions
// that a previously published page may still reference.
func (u *Uploader) Upload(ctx context.Context, arts []Artifact) (*Result, error) {
	if err := validateArtifacts(arts); err != nil {
		return nil, err
	}

	res := &Result{Destination: "object-storage"}
	for _, a := range arts {
		info, err := u.store.Put(ctx, a.Key, bytes.NewReader(a.Body), storage.PutObjectOptions{
			Size:         int64(len(a.Body)),
			ContentType:  a.ContentType,
			CacheControl: a.CacheControl,
			Metadata: map[string]string{
				"generator": "flow7-export",
			},
		})
		if err != nil {
			return nil, fmt.Errorf("upload %s: %w", a.Key, err)
		}
		res.Files = append(res.Files, File{Key: info.Key, Size: info.Size, ETag: info.ETag})
	}
	return res, nil
}

// PreviewURL returns a pre-signed URL for the uploaded page.
func (u *Uploader) PreviewURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}
	return u.store.PresignGet(ctx, key, expiry)
}
