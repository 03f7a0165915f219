// Package upload validates uploaded images before they enter the rendering
// pipeline. MIME type and pixel dimensions are re-derived from the actual
// bytes; the caller-declared content type is never trusted.
package upload

import (
	"bytes"
	"image"

	_ "image/jpeg"
	_ "image/png"

	"nanofloor/internal/domain"
	"nanofloor/internal/i18n"
)

// Role distinguishes the required room photo from the optional flooring
// reference swatch; the two carry different dimension rules.
type Role int

const (
	RoleRoom Role = iota
	RoleReference
)

var mimeByFormat = map[string]string{
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"webp": "image/webp",
}

// Validate checks one uploaded image and returns its byte-derived metadata.
// Validation stops at the first failed rule; every failure is a
// *domain.ValidationError with a user-facing message.
func Validate(data []byte, role Role) (*domain.ValidatedImage, error) {
	if len(data) > domain.MaxUploadBytes {
		if role == RoleReference {
			return nil, domain.NewValidationError(i18n.CodeRefSize, "Reference image exceeds 10MB limit.")
		}
		return nil, domain.NewValidationError(i18n.CodeRoomSize, "Room image exceeds 10MB limit.")
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		if role == RoleReference {
			return nil, domain.NewValidationError(i18n.CodeRefUnreadable, "Unable to read reference image.")
		}
		return nil, domain.NewValidationError(i18n.CodeRoomUnreadable, "Unable to read image metadata.")
	}

	mime, ok := mimeByFormat[format]
	if !ok {
		if role == RoleReference {
			return nil, domain.NewValidationError(i18n.CodeRefType, "Unsupported reference image format.")
		}
		return nil, domain.NewValidationError(i18n.CodeRoomType, "Unsupported room image format.")
	}

	switch role {
	case RoleRoom:
		if cfg.Width < domain.MinRoomWidth || cfg.Height < domain.MinRoomHeight {
			return nil, domain.NewValidationError(i18n.CodeRoomTooSmall, "Room image must be at least 800x600.")
		}
		if cfg.Width > domain.MaxRoomEdge || cfg.Height > domain.MaxRoomEdge {
			return nil, domain.NewValidationError(i18n.CodeRoomTooLarge, "Room image must be 4000px or smaller on each edge.")
		}
	case RoleReference:
		if cfg.Width < domain.MinReferenceWidth || cfg.Height < domain.MinReferenceHeight {
			return nil, domain.NewValidationError(i18n.CodeRefTooSmall, "Reference image must be at least 400x400.")
		}
	}

	return &domain.ValidatedImage{
		Bytes:    data,
		MIMEType: mime,
		Width:    cfg.Width,
		Height:   cfg.Height,
	}, nil
}
