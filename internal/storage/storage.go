// Package storage persists image bytes and hands back URLs the router can
// serve. The disk implementation backs the /uploads static route; an
// object-storage implementation can replace it behind the same interface.
package storage

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store writes binary assets and returns their public URL path.
type Store interface {
	// Save persists data under a generated name derived from baseName and
	// mediaType, returning the URL path clients can fetch it from.
	Save(baseName string, mediaType string, data []byte) (url string, err error)
}

type diskStore struct {
	dir       string
	urlPrefix string
}

// NewDiskStore returns a Store rooted at dir, serving under urlPrefix
// (typically "/uploads").
func NewDiskStore(dir, urlPrefix string) (Store, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("could not create upload directory: %w", err)
	}
	return &diskStore{dir: dir, urlPrefix: strings.TrimSuffix(urlPrefix, "/")}, nil
}

func (s *diskStore) Save(baseName string, mediaType string, data []byte) (string, error) {
	name := sanitize(baseName)
	if name == "" {
		name = "asset"
	}
	// Random suffix avoids collisions between same-named uploads.
	fileName := fmt.Sprintf("%s-%s%s", name, uuid.NewString()[:8], extensionFor(mediaType))

	path := filepath.Join(s.dir, fileName)
	if err := os.WriteFile(path, data, 0640); err != nil {
		return "", fmt.Errorf("could not write asset file: %w", err)
	}
	return s.urlPrefix + "/" + fileName, nil
}

func sanitize(name string) string {
	name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('-')
		}
	}
	out := b.String()
	if len(out) > 60 {
		out = out[:60]
	}
	return out
}

func extensionFor(mediaType string) string {
	switch mediaType {
	case "image/svg+xml":
		return ".svg"
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	}
	if exts, err := mime.ExtensionsByType(mediaType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ".bin"
}
