package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"nanofloor/internal/domain"
	"nanofloor/internal/i18n"
	"nanofloor/internal/middleware"
	"nanofloor/internal/upload"
)

// Multipart parts buffered in memory before spilling to disk.
const multipartMemoryLimit = 16 << 20

type processResponse struct {
	OriginalWidth   int    `json:"original_width"`
	OriginalHeight  int    `json:"original_height"`
	ProcessedURL    string `json:"processed_url,omitempty"`
	ProcessedBase64 string `json:"processed_base64,omitempty"`
	AssetID         string `json:"asset_id,omitempty"`
}

// Process runs one rendering request end to end: rate limit, selection parse,
// upload validation, preset merge, generation, persistence. It short-circuits
// on the first failure and maps each failure class to its status code.
func (a *App) Process(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	locale := middleware.LocaleFromContext(ctx)

	if !a.Limiter.Allow(requestIdentity(r), a.Config.RateLimitPerMinute) {
		a.error(w, http.StatusTooManyRequests, i18n.Message(locale, i18n.CodeRateLimited, ""))
		return
	}

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		a.error(w, http.StatusBadRequest, i18n.Message(locale, i18n.CodeInvalidPayload, ""))
		return
	}

	sel, err := domain.ParseSelection(r.FormValue("sample"))
	if err != nil {
		a.error(w, http.StatusBadRequest, i18n.Message(locale, i18n.CodeInvalidSelection, ""))
		return
	}
	if !sel.PromptWithinLimit() {
		a.error(w, http.StatusBadRequest, i18n.Message(locale, i18n.CodePromptTooLong, ""))
		return
	}

	roomBytes, ok := readUpload(r, "roomImage")
	if !ok {
		a.error(w, http.StatusBadRequest, i18n.Message(locale, i18n.CodeRoomRequired, ""))
		return
	}
	room, err := upload.Validate(roomBytes, upload.RoleRoom)
	if err != nil {
		a.validationError(w, locale, err)
		return
	}

	var reference *domain.ValidatedImage
	if refBytes, ok := readUpload(r, "referenceImage"); ok {
		reference, err = upload.Validate(refBytes, upload.RoleReference)
		if err != nil {
			a.validationError(w, locale, err)
			return
		}
	}

	sel = a.mergePreset(ctx, sel)

	result, err := a.Renderer.RenderFloor(ctx, *room, sel, reference, room.Width, room.Height)
	if err != nil {
		a.Logger.Error().Err(err).Str("selection_id", sel.ID).Msg("process: floor rendering failed")
		a.error(w, http.StatusInternalServerError, err.Error())
		return
	}

	persisted := a.Store.Persist(ctx, result)

	resp := processResponse{
		OriginalWidth:  room.Width,
		OriginalHeight: room.Height,
		ProcessedURL:   persisted.URL,
		AssetID:        persisted.AssetID,
	}
	if result.Inline() {
		resp.ProcessedBase64 = persisted.InlineDataURI
	}
	a.json(w, http.StatusOK, resp)
}

// mergePreset folds catalog fields into a selection that references a stored
// preset. Catalog values win for dimension and style, the catalog description
// is appended to the free-text prompt, and the title replaces the name. A
// lookup failure leaves the selection as submitted.
func (a *App) mergePreset(ctx context.Context, sel domain.Selection) domain.Selection {
	id, ok := sel.PresetID()
	if !ok {
		return sel
	}
	preset, err := a.Presets.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			a.Logger.Warn().Err(err).Int("preset_id", id).Msg("process: preset lookup failed")
		}
		return sel
	}
	if preset.Title != "" {
		sel.Name = preset.Title
	}
	if preset.Dimension != "" {
		sel.Dimension = preset.Dimension
	}
	if preset.Style != "" {
		sel.Style = preset.Style
	}
	sel.Prompt = appendDescription(sel.Prompt, preset.Description)
	return sel
}

func (a *App) validationError(w http.ResponseWriter, locale string, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		a.error(w, http.StatusBadRequest, i18n.Message(locale, verr.Code, verr.Message))
		return
	}
	a.error(w, http.StatusBadRequest, err.Error())
}

// requestIdentity keys the rate limiter: the session subject when present,
// the client IP otherwise.
func requestIdentity(r *http.Request) string {
	if sub := middleware.SessionSubject(r.Context()); sub != "" {
		return "user_" + sub
	}
	return "ip_" + middleware.ClientIP(r)
}

func readUpload(r *http.Request, field string) ([]byte, bool) {
	file, _, err := r.FormFile(field)
	if err != nil {
		return nil, false
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil || len(data) == 0 {
		return nil, false
	}
	return data, true
}

func appendDescription(prompt, description string) string {
	description = strings.TrimSpace(description)
	if description == "" {
		return prompt
	}
	if prompt == "" {
		return description
	}
	return prompt + " " + description
}
