package imagegen

import (
	"fmt"
	"strings"

	"roomdesign/internal/domain"
)

var tryOnDirectives = []string{
	"Apply the chosen design style (%[1]s) to the uploaded %[2]s.",
	"Enhance the space visually while respecting the structure of the original layout.",
	"Harmonize background/foreground color preferences subtly in the decor.",
	"Produce a **photo-realistic redesign image** and a **short textual description**.",
	"Do not change any structure of the room, only the design.",
	"The design should be realistic and practical for the user.",
	"The design should be aligned with the user's preferences and instructions.",
	"Also return the cost and time required for the redesign.",
	"Return the cost of the design and an in-depth description of the design.",
	"Return all colors of the design in hex format.",
	"Return the cost of the design in USD.",
	"**IMPORTANT**: If user furniture images are provided, naturally integrate them into the redesigned space. Place them appropriately based on their category and the room layout. Make sure they blend seamlessly with the overall design aesthetic.",
}

var placementDirectives = []string{
	"Naturally integrate ALL the provided furniture/object images into the room design.",
	"Place each furniture item in an appropriate location based on its type and the room layout.",
	"Ensure proper scaling so furniture looks proportional to the room.",
	"Maintain realistic perspective and shadows.",
	"Make sure the furniture blends seamlessly with the existing design aesthetic.",
	"Consider practical placement (e.g., sofa against wall, table in center, lamps near seating).",
	"Preserve the original room's lighting, colors, and overall atmosphere.",
}

// BuildTryOnPrompt embeds every design field verbatim followed by the
// furniture summary and the fixed generation directives.
func BuildTryOnPrompt(p domain.DesignParams, furnitureSummary string) string {
	var b strings.Builder
	b.WriteString("You are a professional AI interior and exterior designer.\n")
	b.WriteString("Your task is to redesign a user's uploaded space.\n\n")

	b.WriteString("### User Input\n")
	fmt.Fprintf(&b, "- **Design Type:** %s\n", p.DesignType)
	fmt.Fprintf(&b, "- **Room Type:** %s\n", p.RoomType)
	fmt.Fprintf(&b, "- **Style:** %s\n", p.Style)
	fmt.Fprintf(&b, "- **Background Color Preference:** %s\n", p.BackgroundColor)
	fmt.Fprintf(&b, "- **Foreground Color Preference:** %s\n", p.ForegroundColor)
	fmt.Fprintf(&b, "- **Instructions:** %s\n", p.Instructions)
	b.WriteString(furnitureSummary)

	b.WriteString("\n### Objective:\n")
	for i, d := range tryOnDirectives {
		if i == 0 {
			d = fmt.Sprintf(d, p.Style, p.RoomType)
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, d)
	}

	b.WriteString("\nReturn:\n")
	b.WriteString("- A realistic redesigned image of the space.\n")
	b.WriteString("- A short caption describing the redesign, highlighting how it aligns with the selected preferences and suggesting improvements.\n")
	return b.String()
}

// BuildPlacementPrompt describes the base room and asks the model to place
// furnitureCount object images into it.
func BuildPlacementPrompt(design domain.RoomDesign, furnitureCount int) string {
	var b strings.Builder
	b.WriteString("You are a professional AI interior designer specialized in furniture placement.\n\n")

	b.WriteString("### Task:\nYou are provided with:\n")
	b.WriteString("1. A room design image (the base room)\n")
	fmt.Fprintf(&b, "2. %d furniture/object image(s) that need to be placed in this room\n\n", furnitureCount)

	b.WriteString("### Room Context:\n")
	fmt.Fprintf(&b, "- Design Type: %s\n", design.DesignType)
	fmt.Fprintf(&b, "- Room Type: %s\n", design.RoomType)
	fmt.Fprintf(&b, "- Style: %s\n\n", design.Style)

	b.WriteString("### Objective:\n")
	for i, d := range placementDirectives {
		fmt.Fprintf(&b, "%d. %s\n", i+1, d)
	}

	b.WriteString("\n### Important:\n")
	b.WriteString("- The furniture should look like it naturally belongs in the room\n")
	b.WriteString("- Maintain photorealistic quality\n")
	b.WriteString("- Don't change the room structure, only add the furniture\n")
	b.WriteString("- Ensure proper depth perception and spatial relationships\n\n")

	b.WriteString("Return:\n")
	b.WriteString("- A photorealistic image of the room WITH all the furniture items placed naturally\n")
	b.WriteString("- A brief description of where each piece was placed and why\n")
	return b.String()
}
