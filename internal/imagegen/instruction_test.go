package imagegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"roomdesign/internal/domain"
)

func TestBuildTryOnPrompt(t *testing.T) {
	params := domain.DesignParams{
		DesignType:      "interior",
		RoomType:        "living room",
		Style:           "Japandi",
		BackgroundColor: "warm white",
		ForegroundColor: "#8B5A2B",
		Instructions:    "keep the fireplace",
	}
	summary := FurnitureSummary([]domain.FurnitureItem{{Name: "Blue Sofa", Category: "seating"}})

	got := BuildTryOnPrompt(params, summary)

	for _, expect := range []string{
		"- **Design Type:** interior",
		"- **Room Type:** living room",
		"- **Style:** Japandi",
		"- **Background Color Preference:** warm white",
		"- **Foreground Color Preference:** #8B5A2B",
		"- **Instructions:** keep the fireplace",
		"### User's Furniture to Include:\n1. **Blue Sofa** (Category: seating)\n",
		"1. Apply the chosen design style (Japandi) to the uploaded living room.",
		"10. Return all colors of the design in hex format.",
		"11. Return the cost of the design in USD.",
		"12. **IMPORTANT**",
	} {
		assert.Contains(t, got, expect)
	}
	assert.NotContains(t, got, "13.")
	assert.Equal(t, got, BuildTryOnPrompt(params, summary))
}

func TestBuildTryOnPromptWithoutFurniture(t *testing.T) {
	got := BuildTryOnPrompt(domain.DesignParams{Style: "boho", RoomType: "bedroom"}, "")
	assert.NotContains(t, got, "Furniture to Include")
	assert.Contains(t, got, "- **Instructions:** \n")
}

func TestBuildPlacementPrompt(t *testing.T) {
	got := BuildPlacementPrompt(domain.RoomDesign{DesignType: "interior", RoomType: "office", Style: "industrial"}, 3)

	assert.Contains(t, got, "2. 3 furniture/object image(s)")
	assert.Contains(t, got, "- Room Type: office")
	assert.Contains(t, got, "- Style: industrial")
	assert.Contains(t, got, "7. Preserve the original room's lighting")
	assert.Equal(t, 1, strings.Count(got, "### Room Context:"))
}

func TestFurnitureSummary(t *testing.T) {
	assert.Empty(t, FurnitureSummary(nil))
	got := FurnitureSummary([]domain.FurnitureItem{
		{Name: "Lamp", Category: "lighting"},
		{Name: "Rug", Category: "textiles"},
	})
	assert.Equal(t, "\n\n### User's Furniture to Include:\n1. **Lamp** (Category: lighting)\n2. **Rug** (Category: textiles)\n", got)
}
