// Package i18n holds the user-facing message catalogs. The service ships
// English and Indonesian; unknown locales fall back to English.
package i18n

// Message codes shared between the validators, handlers, and catalogs.
const (
	CodeRateLimited      = "rate_limited"
	CodeInvalidPayload   = "invalid_payload"
	CodeInvalidSelection = "invalid_selection"
	CodePromptTooLong    = "prompt_too_long"
	CodeRoomRequired     = "room_required"
	CodeRoomSize         = "room_size"
	CodeRoomType         = "room_type"
	CodeRoomUnreadable   = "room_unreadable"
	CodeRoomTooSmall     = "room_too_small"
	CodeRoomTooLarge     = "room_too_large"
	CodeRefSize          = "ref_size"
	CodeRefType          = "ref_type"
	CodeRefUnreadable    = "ref_unreadable"
	CodeRefTooSmall      = "ref_too_small"
	CodeGenericError     = "generic_error"
)

var english = map[string]string{
	CodeRateLimited:      "Slow down - please wait a few seconds and try again.",
	CodeInvalidPayload:   "Invalid request payload.",
	CodeInvalidSelection: "Invalid or missing flooring selection.",
	CodePromptTooLong:    "Please shorten the selection details or description.",
	CodeRoomRequired:     "Room image is required.",
	CodeRoomSize:         "Room image exceeds 10MB limit.",
	CodeRoomType:         "Unsupported room image format.",
	CodeRoomUnreadable:   "Unable to read image metadata.",
	CodeRoomTooSmall:     "Room image must be at least 800x600.",
	CodeRoomTooLarge:     "Room image must be 4000px or smaller on each edge.",
	CodeRefSize:          "Reference image exceeds 10MB limit.",
	CodeRefType:          "Unsupported reference image format.",
	CodeRefUnreadable:    "Unable to read reference image.",
	CodeRefTooSmall:      "Reference image must be at least 400x400.",
	CodeGenericError:     "Something went wrong. Please try again.",
}

var indonesian = map[string]string{
	CodeRateLimited:      "Pelan-pelan - tunggu beberapa detik lalu coba lagi.",
	CodeInvalidPayload:   "Payload permintaan tidak valid.",
	CodeInvalidSelection: "Pilihan lantai tidak valid atau kosong.",
	CodePromptTooLong:    "Persingkat detail pilihan atau deskripsinya.",
	CodeRoomRequired:     "Foto ruangan wajib diunggah.",
	CodeRoomSize:         "Foto ruangan melebihi batas 10MB.",
	CodeRoomType:         "Format foto ruangan tidak didukung.",
	CodeRoomUnreadable:   "Metadata gambar tidak dapat dibaca.",
	CodeRoomTooSmall:     "Foto ruangan minimal 800x600.",
	CodeRoomTooLarge:     "Foto ruangan maksimal 4000px di tiap sisi.",
	CodeRefSize:          "Gambar referensi melebihi batas 10MB.",
	CodeRefType:          "Format gambar referensi tidak didukung.",
	CodeRefUnreadable:    "Gambar referensi tidak dapat dibaca.",
	CodeRefTooSmall:      "Gambar referensi minimal 400x400.",
	CodeGenericError:     "Terjadi kesalahan. Silakan coba lagi.",
}

// Message resolves a code against the catalog for the given locale. The
// fallback is returned when the code is unknown.
func Message(locale, code, fallback string) string {
	catalog := english
	if locale == "id" {
		catalog = indonesian
	}
	if msg, ok := catalog[code]; ok {
		return msg
	}
	if msg, ok := english[code]; ok {
		return msg
	}
	return fallback
}
