package genai

import (
	"fmt"
	"strings"

	"nanofloor/internal/domain"
)

// BuildPrompt composes the editing instruction sent to the image model. The
// ordering matters: the dimension constraint leads, the fixed replace/preserve
// instructions follow, then the flooring description, then the closing
// constraints. When a reference image is attached it is declared the
// authoritative source for the flooring's appearance and any free text is
// demoted to a secondary request; without one the text (or the selection name)
// is the primary signal. Deterministic and pure.
func BuildPrompt(sel domain.Selection, hasReference bool, width, height int) string {
	var pieces []string

	if width > 0 && height > 0 {
		pieces = append(pieces, fmt.Sprintf("IMPORTANT: Output image must be exactly %dx%d pixels.", width, height))
	}

	pieces = append(pieces,
		"You are an expert interior photo editor. Your primary task is to realistically replace the floor in the provided image.",
		"CRITICAL INSTRUCTION: You MUST replace 100% of the visible floor area. Remove any rugs or other objects on the floor, and replace the area beneath them with the new flooring. The new material must extend to all walls and edges, leaving no gaps or original flooring visible.",
		"Preserve the original lighting, shadows, and perspective of the room. Do not change walls, furniture that is not on the floor, or any other decor.",
	)

	if hasReference {
		pieces = append(pieces, "The provided reference image is the absolute source of truth for the new flooring's appearance. You MUST replicate its color, texture, and pattern exactly. All other text descriptions are secondary.")
		var hints []string
		if sel.Dimension != "" {
			hints = append(hints, "plank/tile dimensions: "+sel.Dimension)
		}
		if sel.Style != "" {
			hints = append(hints, "style: "+sel.Style)
		}
		if len(hints) > 0 {
			pieces = append(pieces, "Use these hints for scale and layout: "+strings.Join(hints, "; ")+".")
		}
		if sel.Prompt != "" {
			pieces = append(pieces, `Also consider the user's secondary request: "`+sel.Prompt+`".`)
		}
	} else {
		if sel.Prompt != "" {
			pieces = append(pieces, "Use this description for the new flooring: "+sel.Prompt+".")
		} else {
			pieces = append(pieces, "Use sample: "+strings.TrimSpace(sel.Name)+".")
		}
		if sel.Dimension != "" {
			pieces = append(pieces, "Plank/tile dimensions: "+sel.Dimension+".")
		}
		if sel.Style != "" {
			pieces = append(pieces, "Style: "+sel.Style+".")
		}
	}

	pieces = append(pieces,
		"Maintain a realistic scale and orientation for the new flooring. Match the output resolution to the input image.",
		"Output the edited image directly, with no transparency.",
	)

	return strings.Join(pieces, " ")
}
