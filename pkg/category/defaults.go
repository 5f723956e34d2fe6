package category

import "tableflip.dev/chrono/pkg/palette"

// DefaultNames lists the seed categories in picker order.
var DefaultNames = []string{
	"health",
	"energy",
	"supplement",
	"cardio",
	"outdoor",
	"work",
	"focus",
	"sport",
}

// DefaultCategory is preselected when creating an item.
const DefaultCategory = "sport"

// Defaults returns a fresh copy of the seed mapping.
func Defaults() map[string]palette.Color {
	return map[string]palette.Color{
		"health":     palette.Green,
		"energy":     palette.Yellow,
		"supplement": palette.Purple,
		"cardio":     palette.Cyan,
		"outdoor":    palette.Brown,
		"work":       palette.Blue,
		"focus":      palette.Indigo,
		"sport":      palette.Pink,
	}
}
