package domain

// PaletteEntry colours for one resource's cards
type PaletteEntry struct {
	Background string
	Border     string
	Text       string
}

var palette = [...]PaletteEntry{
	{Background: "#DBEAFE", Border: "#3B82F6", Text: "#1E3A8A"},
	{Background: "#DCFCE7", Border: "#22C55E", Text: "#14532D"},
	{Background: "#FEF3C7", Border: "#F59E0B", Text: "#78350F"},
	{Background: "#FCE7F3", Border: "#EC4899", Text: "#831843"},
	{Background: "#EDE9FE", Border: "#8B5CF6", Text: "#4C1D95"},
	{Background: "#CCFBF1", Border: "#14B8A6", Text: "#134E4A"},
	{Background: "#FFE4E6", Border: "#F43F5E", Text: "#881337"},
	{Background: "#E0E7FF", Border: "#6366F1", Text: "#312E81"},
}

// PaletteSize number of distinct colours before wraparound
const PaletteSize = len(palette)

// ColorFor returns the palette entry for a resource position, wrapping around
func ColorFor(index int) PaletteEntry {
	i := index % PaletteSize
	if i < 0 {
		i += PaletteSize
	}
	return palette[i]
}
