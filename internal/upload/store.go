package upload

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrDisallowedExtension error = errors.New("disallowed file extension")
var ErrFileNotFound error = errors.New("file not found")

var allowedExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
	"webp": {},
}

// Store writes uploaded images into a flat directory under generated names.
// The client-supplied base name is never trusted or preserved.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	return &Store{dir: dir}, nil
}

// Save persists the file under a random name and returns it. An absent file
// (empty client filename) is a no-op returning "" since images are optional.
func (s *Store) Save(filename string, src io.Reader) (string, error) {
	if filename == "" {
		return "", nil
	}

	ext, err := allowedExtension(filename)
	if err != nil {
		return "", err
	}

	id := uuid.New()
	generated := hex.EncodeToString(id[:]) + "." + ext

	dst, err := os.Create(filepath.Join(s.dir, generated))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("close upload file: %w", err)
	}

	return generated, nil
}

// Resolve maps a stored filename to its on-disk path. Names carrying path
// separators or unknown files yield ErrFileNotFound.
func (s *Store) Resolve(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || strings.ContainsAny(filename, `/\`) {
		return "", ErrFileNotFound
	}

	full := filepath.Join(s.dir, filename)
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return "", ErrFileNotFound
	}

	return full, nil
}

func allowedExtension(filename string) (string, error) {
	name := sanitizeFilename(filename)

	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return "", fmt.Errorf("%w: missing extension", ErrDisallowedExtension)
	}

	ext := strings.ToLower(name[idx+1:])
	if _, ok := allowedExtensions[ext]; !ok {
		return "", fmt.Errorf("%w: %q", ErrDisallowedExtension, ext)
	}

	return ext, nil
}

// sanitizeFilename strips path components and anything outside a conservative
// character set, the same treatment the original filename gets everywhere.
func sanitizeFilename(filename string) string {
	name := strings.ReplaceAll(filename, `\`, "/")
	name = path.Base(name)

	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return -1
		}
	}, name)
}
