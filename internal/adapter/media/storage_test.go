package media

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/garagehub/vehicle-service/internal/core/ports"

	"github.com/stretchr/testify/require"
)

func TestSaveDataURLWritesDecodedContent(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewStorage(dir)
	require.NoError(t, err)

	payload := []byte("not really a jpeg")
	dataURL := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(payload)

	path, err := storage.SaveDataURL(ports.MediaKindPhoto, 3, 0, dataURL)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(path, "/uploads/photo_3_0_"))
	require.True(t, strings.HasSuffix(path, ".jpg"))

	content, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(path, "/uploads/")))
	require.NoError(t, err)
	require.Equal(t, payload, content)
}

func TestSaveDataURLInspectionHasNoIndex(t *testing.T) {
	storage, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	dataURL := "data:application/pdf;base64," + base64.StdEncoding.EncodeToString([]byte("pdf"))
	path, err := storage.SaveDataURL(ports.MediaKindInspection, 7, -1, dataURL)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(path, "/uploads/inspection_7_"))
	require.True(t, strings.HasSuffix(path, ".pdf"))

	// Only the record id and random suffix between the prefix and extension.
	base := strings.TrimSuffix(strings.TrimPrefix(path, "/uploads/inspection_7_"), ".pdf")
	require.Len(t, base, 8)
}

func TestSaveDataURLRejectsMalformedInput(t *testing.T) {
	storage, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	_, err = storage.SaveDataURL(ports.MediaKindPhoto, 1, 0, "no comma here")
	require.Error(t, err)

	_, err = storage.SaveDataURL(ports.MediaKindPhoto, 1, 0, "data:image/jpeg;base64,___not-base64___")
	require.Error(t, err)
}

func TestFileNamesDoNotCollide(t *testing.T) {
	storage, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	a := storage.fileName(ports.MediaKindPhoto, 1, 0, "jpg")
	b := storage.fileName(ports.MediaKindPhoto, 1, 0, "jpg")
	require.NotEqual(t, a, b)
}

func TestExtOfFallsBackPerKind(t *testing.T) {
	require.Equal(t, "png", extOf("photo.png", ports.MediaKindPhoto))
	require.Equal(t, "jpg", extOf("noext", ports.MediaKindPhoto))
	require.Equal(t, "mp4", extOf("", ports.MediaKindVideo))
	require.Equal(t, "pdf", extOf("", ports.MediaKindInspection))
}
