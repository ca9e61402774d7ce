package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type Local struct {
	BaseDir   string
	URLPrefix string
}

func NewLocal(baseDir, urlPrefix string) *Local {
	return &Local{BaseDir: baseDir, URLPrefix: urlPrefix}
}

func (l *Local) Put(ctx context.Context, r io.Reader, in PutInput) (PutResult, error) {
	_ = ctx

	folder := sanitizeFolder(in.Folder)
	dir := filepath.Join(l.BaseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return PutResult{}, err
	}

	ext := safeExt(in.Filename)
	name := uuid.NewString() + ext
	key := name
	if folder != "" {
		key = folder + "/" + name
	}

	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return PutResult{}, err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return PutResult{}, err
	}

	url := strings.TrimRight(l.URLPrefix, "/") + "/" + key
	return PutResult{Key: key, URL: url}, nil
}

func (l *Local) Delete(ctx context.Context, key string) error {
	_ = ctx
	// Reject traversal; key is at most folder/name.
	key = filepath.ToSlash(filepath.Clean(key))
	if strings.Contains(key, "..") {
		return fmt.Errorf("invalid storage key: %s", key)
	}
	return os.Remove(filepath.Join(l.BaseDir, filepath.FromSlash(key)))
}

func sanitizeFolder(folder string) string {
	folder = strings.Trim(folder, "/")
	if folder == "" || strings.Contains(folder, "..") {
		return ""
	}
	return folder
}

func safeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp", ".gif":
		return ext
	default:
		return ""
	}
}

func (l *Local) String() string { return fmt.Sprintf("local(%s)", l.BaseDir) }
