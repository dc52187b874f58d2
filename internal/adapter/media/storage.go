// Package media writes uploaded files into the shared upload directory and
// hands back public-servable relative paths. There are no size limits and
// content type comes from the filename extension only.
package media

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/garagehub/vehicle-service/internal/core/ports"

	"github.com/google/uuid"
)

const publicPrefix = "/uploads/"

var defaultExts = map[string]string{
	ports.MediaKindPhoto:      "jpg",
	ports.MediaKindVideo:      "mp4",
	ports.MediaKindInspection: "pdf",
}

type Storage struct {
	dir string
}

func NewStorage(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Storage{dir: dir}, nil
}

func (s *Storage) Dir() string {
	return s.dir
}

func (s *Storage) SaveUpload(kind string, recordID, index int, file *multipart.FileHeader) (string, error) {
	name := s.fileName(kind, recordID, index, extOf(file.Filename, kind))

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return publicPrefix + name, nil
}

func (s *Storage) SaveDataURL(kind string, recordID, index int, dataURL string) (string, error) {
	_, encoded, found := strings.Cut(dataURL, ",")
	if !found {
		return "", fmt.Errorf("malformed data URL")
	}
	content, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decode data URL: %w", err)
	}

	name := s.fileName(kind, recordID, index, defaultExts[kind])
	if err := os.WriteFile(filepath.Join(s.dir, name), content, 0o644); err != nil {
		return "", err
	}
	return publicPrefix + name, nil
}

// fileName builds {kind}_{recordId}_{index}_{randomSuffix}.{ext}; a negative
// index (the single inspection document) drops the index segment.
func (s *Storage) fileName(kind string, recordID, index int, ext string) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	if index < 0 {
		return fmt.Sprintf("%s_%d_%s.%s", kind, recordID, suffix, ext)
	}
	return fmt.Sprintf("%s_%d_%d_%s.%s", kind, recordID, index, suffix, ext)
}

func extOf(filename, kind string) string {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		return defaultExts[kind]
	}
	return ext
}
