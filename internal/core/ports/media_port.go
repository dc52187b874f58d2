package ports

import "mime/multipart"

// Media kinds; each gets its own filename prefix and default extension.
const (
	MediaKindPhoto      = "photo"
	MediaKindVideo      = "video"
	MediaKindInspection = "inspection"
)

// MediaStorage writes uploaded media to the shared upload directory and
// returns the public-servable relative path ("/uploads/{name}"). Filenames
// carry a random suffix; there is no size or content-type validation beyond
// the extension.
type MediaStorage interface {
	SaveUpload(kind string, recordID, index int, file *multipart.FileHeader) (string, error)
	SaveDataURL(kind string, recordID, index int, dataURL string) (string, error)
}
