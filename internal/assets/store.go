// Package assets persists generated flooring images. Durable storage is best
// effort: when the disk write or metadata registration fails, the image is
// still delivered inline so the user never loses a finished render.
package assets

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"nanofloor/internal/genai"
	"nanofloor/internal/infra"
)

// PersistedAsset is the durable or inline form of a generation result.
type PersistedAsset struct {
	URL           string
	AssetID       string
	InlineDataURI string
}

// Record is the metadata row registered for a stored asset.
type Record struct {
	ID         string
	StorageKey string
	MIMEType   string
	Bytes      int64
	CreatedAt  time.Time
}

// Registry registers metadata for stored assets.
type Registry interface {
	Register(ctx context.Context, rec Record) error
}

// Store writes generated images under a base directory and registers their
// metadata. A nil registry skips registration; an empty path disables durable
// storage entirely.
type Store struct {
	path     string
	baseURL  string
	registry Registry
	logger   infra.Logger
}

// NewStore constructs a result store.
func NewStore(path, baseURL string, registry Registry, logger infra.Logger) *Store {
	return &Store{
		path:     strings.TrimSpace(path),
		baseURL:  strings.TrimRight(baseURL, "/"),
		registry: registry,
		logger:   logger,
	}
}

// Persist stores the generation result. Remote URLs pass through unchanged.
// Inline data is decoded and written to disk; on any storage failure the
// result degrades to an inline data URI instead of failing the request.
func (s *Store) Persist(ctx context.Context, res *genai.Result) PersistedAsset {
	if res == nil {
		return PersistedAsset{}
	}
	if !res.Inline() {
		return PersistedAsset{URL: res.RemoteURL}
	}

	inline := PersistedAsset{InlineDataURI: DataURI(res.MIMEType, res.Base64Data)}

	binary, err := base64.StdEncoding.DecodeString(res.Base64Data)
	if err != nil {
		s.logger.Warn().Err(err).Msg("assets: result payload is not valid base64, delivering inline")
		return inline
	}
	if s.path == "" {
		return inline
	}

	id := uuid.NewString()
	name := fmt.Sprintf("nano-floor-%s%s", id, extensionFor(res.MIMEType))
	if err := os.MkdirAll(s.path, 0o755); err != nil {
		s.logger.Warn().Err(err).Msg("assets: storage directory unavailable, delivering inline")
		return inline
	}
	if err := os.WriteFile(filepath.Join(s.path, name), binary, 0o644); err != nil {
		s.logger.Warn().Err(err).Msg("assets: write failed, delivering inline")
		return inline
	}

	persisted := PersistedAsset{
		URL:           s.baseURL + "/" + name,
		InlineDataURI: inline.InlineDataURI,
	}

	if s.registry != nil {
		rec := Record{
			ID:         id,
			StorageKey: name,
			MIMEType:   res.MIMEType,
			Bytes:      int64(len(binary)),
			CreatedAt:  time.Now().UTC(),
		}
		if err := s.registry.Register(ctx, rec); err != nil {
			// The file is already durable; losing the metadata row is not
			// worth failing the request over.
			s.logger.Warn().Err(err).Str("storage_key", name).Msg("assets: metadata registration failed")
		} else {
			persisted.AssetID = id
		}
	}

	return persisted
}

// DataURI renders base64 image data as a data URI for inline delivery.
func DataURI(mime, b64 string) string {
	if mime == "" {
		mime = "image/png"
	}
	return "data:" + mime + ";base64," + b64
}

func extensionFor(mime string) string {
	switch mime {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}
