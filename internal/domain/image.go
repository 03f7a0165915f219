package domain

// MaxUploadBytes is the inclusive size limit for any uploaded image.
const MaxUploadBytes = 10 << 20

// Room image pixel bounds; the reference swatch only has a lower bound.
const (
	MinRoomWidth       = 800
	MinRoomHeight      = 600
	MaxRoomEdge        = 4000
	MinReferenceWidth  = 400
	MinReferenceHeight = 400
)

// ValidatedImage is an uploaded image whose MIME type and pixel dimensions
// were re-derived from the actual bytes. Inputs are never persisted; the
// struct lives only for the duration of one request.
type ValidatedImage struct {
	Bytes    []byte
	MIMEType string
	Width    int
	Height   int
}
