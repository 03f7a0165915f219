package domain

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// CustomSelectionID marks a selection composed by the user instead of a
	// catalog preset.
	CustomSelectionID = "custom"

	// MaxDescriptionChars caps the raw free-text flooring description.
	MaxDescriptionChars = 240

	// MaxPromptChars caps the composed prompt submitted by the client. Catalog
	// text merged in later is trusted and exempt.
	MaxPromptChars = 300
)

// Selection describes the flooring the user picked: either a catalog preset
// (numeric ID) or a custom descriptor composed on the client (ID "custom").
// Immutable once submitted.
type Selection struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Prompt       string `json:"prompt"`
	MaterialID   string `json:"materialId"`
	MaterialName string `json:"materialName"`
	Dimension    string `json:"dimension"`
	Style        string `json:"style"`
}

// selectionWire tolerates numeric IDs: preset cards may submit the catalog ID
// as a JSON number.
type selectionWire struct {
	ID           json.RawMessage `json:"id"`
	Name         string          `json:"name"`
	Prompt       string          `json:"prompt"`
	MaterialID   string          `json:"materialId"`
	MaterialName string          `json:"materialName"`
	Dimension    string          `json:"dimension"`
	Style        string          `json:"style"`
}

// ParseSelection decodes and normalizes a JSON-encoded selection descriptor.
func ParseSelection(raw string) (Selection, error) {
	var wire selectionWire
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		return Selection{}, ErrInvalidSelection
	}
	sel := Selection{
		ID:           sanitizeField(decodeFlexibleID(wire.ID)),
		Name:         sanitizeField(wire.Name),
		Prompt:       sanitizeField(wire.Prompt),
		MaterialID:   sanitizeField(wire.MaterialID),
		MaterialName: sanitizeField(wire.MaterialName),
		Dimension:    sanitizeField(wire.Dimension),
		Style:        sanitizeField(wire.Style),
	}
	if sel.IsZero() {
		return Selection{}, ErrInvalidSelection
	}
	return sel, nil
}

// IsZero reports whether every field is empty.
func (s Selection) IsZero() bool {
	return s.ID == "" && s.Name == "" && s.Prompt == "" &&
		s.MaterialID == "" && s.MaterialName == "" && s.Dimension == "" && s.Style == ""
}

// PresetID returns the numeric catalog preset ID referenced by the selection,
// or false when the selection is custom or carries no numeric ID.
func (s Selection) PresetID() (int, bool) {
	if s.ID == "" || s.ID == CustomSelectionID {
		return 0, false
	}
	id, err := strconv.Atoi(s.ID)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// PromptWithinLimit reports whether the client-composed prompt respects the
// 300-character cap.
func (s Selection) PromptWithinLimit() bool {
	return utf8.RuneCountInString(s.Prompt) <= MaxPromptChars
}

func decodeFlexibleID(raw json.RawMessage) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return ""
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	}
	return trimmed
}

// sanitizeField trims the value and collapses control characters, mirroring
// the treatment applied to any user-entered text before it reaches the prompt.
func sanitizeField(v string) string {
	var b strings.Builder
	b.Grow(len(v))
	for _, r := range v {
		if unicode.IsControl(r) {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
