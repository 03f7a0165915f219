// Package widget holds the state machine behind the before/after comparison
// widget: uploads, preset and custom selection, generation and the overlay
// slider. The package is UI-agnostic; a frontend renders from View snapshots.
package widget

import (
	"context"
	"strconv"

	"nanofloor/internal/domain"
)

// Phase is the coarse lifecycle stage the widget is in. It is derived from
// state, never stored.
type Phase int

const (
	PhaseNoUpload Phase = iota
	PhaseUploadedNoSelection
	PhaseReadyToGenerate
	PhaseGenerating
	PhaseResultReady
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseNoUpload:
		return "no_upload"
	case PhaseUploadedNoSelection:
		return "uploaded_no_selection"
	case PhaseReadyToGenerate:
		return "ready"
	case PhaseGenerating:
		return "generating"
	case PhaseResultReady:
		return "result"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// Upload is a client-side file the user picked, before any server validation.
type Upload struct {
	Name string
	MIME string
	Size int64
}

// Outcome is a finished generation as delivered by the backend.
type Outcome struct {
	ProcessedBase64 string
	ProcessedURL    string
	OriginalWidth   int
	OriginalHeight  int
}

// GenerateRequest is what the controller hands to its processor.
type GenerateRequest struct {
	Room      Upload
	Reference *Upload
	Selection domain.Selection
}

// Processor runs a generation request against the backend.
type Processor interface {
	Process(ctx context.Context, req GenerateRequest) (*Outcome, error)
}

const genericErrorMessage = "Something went wrong. Please try again."

var allowedUploadMIMEs = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// Controller owns the widget state and enforces its transitions.
type Controller struct {
	room      *Upload
	reference *Upload
	selection *domain.Selection
	loading   bool
	errMsg    string
	outcome   *Outcome

	Custom CustomPanel
	Slider *Slider
}

// NewController returns a controller in the no-upload phase.
func NewController() *Controller {
	return &Controller{Slider: NewSlider()}
}

// Phase derives the current lifecycle stage.
func (c *Controller) Phase() Phase {
	switch {
	case c.loading:
		return PhaseGenerating
	case c.errMsg != "":
		return PhaseError
	case c.outcome != nil:
		return PhaseResultReady
	case c.room == nil:
		return PhaseNoUpload
	case c.selection == nil:
		return PhaseUploadedNoSelection
	default:
		return PhaseReadyToGenerate
	}
}

// HasResult reports whether a processed image is available to compare.
func (c *Controller) HasResult() bool { return c.outcome != nil }

// Error returns the current error message, if any.
func (c *Controller) Error() string { return c.errMsg }

// Selection returns the active selection, or nil.
func (c *Controller) Selection() *domain.Selection { return c.selection }

// SetRoomImage accepts a room upload after client-side pre-checks. Any
// previous result is discarded because it no longer matches the room.
func (c *Controller) SetRoomImage(u Upload) error {
	if !allowedUploadMIMEs[u.MIME] {
		return domain.NewValidationError("room_invalid_type", "Unsupported file type. Use JPEG, PNG, or WEBP.")
	}
	if u.Size > domain.MaxUploadBytes {
		return domain.NewValidationError("room_too_large", "File exceeds 10MB limit.")
	}
	c.room = &u
	c.errMsg = ""
	c.resetProcessing()
	return nil
}

// SetReferenceImage accepts an optional flooring reference upload.
func (c *Controller) SetReferenceImage(u Upload) error {
	if !allowedUploadMIMEs[u.MIME] {
		return domain.NewValidationError("reference_invalid_type", "Unsupported reference image type.")
	}
	if u.Size > domain.MaxUploadBytes {
		return domain.NewValidationError("reference_too_large", "Reference image exceeds 10MB limit.")
	}
	c.reference = &u
	return nil
}

// ClearReference drops the reference upload.
func (c *Controller) ClearReference() { c.reference = nil }

// SelectPreset activates a catalog preset and discards any previous result.
func (c *Controller) SelectPreset(p domain.Preset) {
	sel := domain.Selection{
		ID:        strconv.Itoa(p.ID),
		Name:      p.Title,
		Prompt:    p.Description,
		Dimension: p.Dimension,
		Style:     p.Style,
	}
	c.selection = &sel
	c.errMsg = ""
	c.resetProcessing()
}

// SubmitCustom composes the custom panel into the active selection. A
// composition failure surfaces as the widget error without touching the
// current selection.
func (c *Controller) SubmitCustom(material *domain.Material) error {
	sel, err := c.Custom.Compose(material, c.reference != nil)
	if err != nil {
		c.errMsg = err.Error()
		return err
	}
	c.selection = &sel
	c.errMsg = ""
	c.resetProcessing()
	return nil
}

// Generate runs the active selection against the processor. Guard failures
// set the widget error and return it without calling the processor.
func (c *Controller) Generate(ctx context.Context, proc Processor) error {
	if c.room == nil {
		c.errMsg = "Upload a room image before generating."
		return domain.NewValidationError("room_required", c.errMsg)
	}
	if c.selection == nil {
		c.errMsg = "Select a flooring preset or configure a custom option."
		return domain.NewValidationError("selection_required", c.errMsg)
	}

	c.loading = true
	c.errMsg = ""

	req := GenerateRequest{Room: *c.room, Reference: c.reference, Selection: *c.selection}
	outcome, err := proc.Process(ctx, req)
	c.loading = false
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = genericErrorMessage
		}
		c.errMsg = msg
		return err
	}
	c.outcome = outcome
	return nil
}

func (c *Controller) resetProcessing() {
	c.outcome = nil
	c.Slider.Reset()
}

// View is a render-ready snapshot of the widget state.
type View struct {
	Phase         Phase
	Error         string
	HasResult     bool
	SliderValue   float64
	SliderEnabled bool
	AppliedWidth  float64
	IndicatorLeft float64
	ProcessedSrc  string
	DownloadHref  string
	ShareURL      string
	CanShare      bool
}

// RenderState computes the snapshot a frontend needs to paint the widget.
// Inline data wins over the stored URL so the result shows even when durable
// storage failed. Sharing needs a durable URL: an inline data URI is fine for
// display and download but is not a link anyone else can open.
func (c *Controller) RenderState() View {
	hasResult := c.HasResult()
	v := View{
		Phase:         c.Phase(),
		Error:         c.errMsg,
		HasResult:     hasResult,
		SliderValue:   c.Slider.Value(),
		SliderEnabled: hasResult,
		AppliedWidth:  c.Slider.AppliedWidth(hasResult),
		IndicatorLeft: c.Slider.IndicatorLeft(hasResult),
	}
	if hasResult {
		if c.outcome.ProcessedBase64 != "" {
			v.ProcessedSrc = c.outcome.ProcessedBase64
		} else {
			v.ProcessedSrc = c.outcome.ProcessedURL
		}
		v.DownloadHref = v.ProcessedSrc
		v.ShareURL = c.outcome.ProcessedURL
		v.CanShare = c.outcome.ProcessedURL != ""
	}
	return v
}
