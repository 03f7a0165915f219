package widget

import (
	"strings"
	"unicode/utf8"

	"nanofloor/internal/domain"
)

// CustomPanel accumulates the guided custom-flooring inputs before they are
// composed into a selection.
type CustomPanel struct {
	MaterialID          string
	MaterialName        string
	Dimension           string
	CustomDimension     string
	CustomDimensionMode bool
	Style               string
	Prompt              string
}

// SelectMaterial switches the panel to a material and resets the dependent
// fields. A material without guided dimensions puts the panel straight into
// free-text dimension entry. A nil material clears the choice.
func (p *CustomPanel) SelectMaterial(material *domain.Material) {
	p.Dimension = ""
	p.CustomDimension = ""
	p.Style = ""
	if material == nil {
		p.MaterialID = ""
		p.MaterialName = ""
		p.CustomDimensionMode = false
		return
	}
	p.MaterialID = material.ID
	p.MaterialName = material.Name
	p.CustomDimensionMode = len(material.Dimensions) == 0
}

// SelectDimension picks one of the guided dimension options, leaving free-text
// mode.
func (p *CustomPanel) SelectDimension(dimension string) {
	p.Dimension = dimension
	p.CustomDimensionMode = false
	p.CustomDimension = ""
}

// UseCustomDimension switches to free-text dimension entry.
func (p *CustomPanel) UseCustomDimension() {
	p.Dimension = ""
	p.CustomDimensionMode = true
}

// Compose validates the panel and builds the custom selection. The guided
// fields are folded into a "Material: ...; Dimensions: ...; Style: ..." prefix
// ahead of the free-text description.
func (p *CustomPanel) Compose(material *domain.Material, hasReference bool) (domain.Selection, error) {
	dimension := strings.TrimSpace(p.Dimension)
	if p.CustomDimensionMode || material == nil || len(material.Dimensions) == 0 {
		dimension = strings.TrimSpace(p.CustomDimension)
	}
	promptText := strings.TrimSpace(p.Prompt)

	if material == nil && promptText == "" && !hasReference {
		return domain.Selection{}, domain.NewValidationError("custom_input_required",
			"Add a material, description, or reference image before generating.")
	}
	if utf8.RuneCountInString(promptText) > domain.MaxDescriptionChars {
		return domain.Selection{}, domain.NewValidationError("description_too_long",
			"Please shorten the description (max 240 characters).")
	}

	var details []string
	if material != nil {
		details = append(details, "Material: "+material.Name)
	}
	if dimension != "" {
		details = append(details, "Dimensions: "+dimension)
	}
	if p.Style != "" {
		details = append(details, "Style: "+p.Style)
	}

	var pieces []string
	if len(details) > 0 {
		pieces = append(pieces, strings.Join(details, "; "))
	}
	if promptText != "" {
		pieces = append(pieces, promptText)
	}
	composed := strings.Join(pieces, ". ")
	if utf8.RuneCountInString(composed) > domain.MaxPromptChars {
		return domain.Selection{}, domain.NewValidationError("selection_too_long",
			"Please shorten the selection details or description.")
	}

	sel := domain.Selection{
		ID:     domain.CustomSelectionID,
		Name:   "Custom Flooring",
		Prompt: composed,
		Style:  p.Style,
	}
	if material != nil {
		sel.MaterialID = material.ID
		sel.MaterialName = material.Name
	}
	sel.Dimension = dimension
	return sel, nil
}
