package palette

// Preset is an entry of the color picker palette.
type Preset struct {
	Name  string
	Color Color
}

// Named system colors.
var (
	Red    = RGB(1, 0.231, 0.188)
	Orange = RGB(1, 0.584, 0)
	Yellow = RGB(1, 0.8, 0)
	Green  = RGB(0.204, 0.78, 0.349)
	Mint   = RGB(0, 0.78, 0.745)
	Teal   = RGB(0.188, 0.69, 0.78)
	Cyan   = RGB(0.196, 0.678, 0.902)
	Blue   = RGB(0, 0.478, 1)
	Indigo = RGB(0.345, 0.337, 0.839)
	Purple = RGB(0.686, 0.322, 0.871)
	Pink   = RGB(1, 0.176, 0.333)
	Brown  = RGB(0.635, 0.518, 0.369)
)

// Presets is the picker palette: the twelve system colors followed by
// twenty softer mixes. Order is stable, indexes are user visible.
var Presets = []Preset{
	{"red", Red},
	{"orange", Orange},
	{"yellow", Yellow},
	{"green", Green},
	{"mint", Mint},
	{"teal", Teal},
	{"cyan", Cyan},
	{"blue", Blue},
	{"indigo", Indigo},
	{"purple", Purple},
	{"pink", Pink},
	{"brown", Brown},
	{"", RGB(1, 0.5, 0.5)},
	{"", RGB(1, 0.7, 0.2)},
	{"", RGB(0.9, 0.9, 0.2)},
	{"", RGB(0.5, 1, 0.5)},
	{"", RGB(0.2, 0.8, 0.7)},
	{"", RGB(0.2, 0.7, 1)},
	{"", RGB(0.4, 0.4, 1)},
	{"", RGB(0.7, 0.4, 1)},
	{"", RGB(1, 0.4, 1)},
	{"", RGB(1, 0.4, 0.7)},
	{"", RGB(0.7, 0.7, 0.7)},
	{"", RGB(0.5, 0.5, 0.5)},
	{"", RGB(0.8, 0.6, 0.4)},
	{"", RGB(0.6, 0.8, 0.4)},
	{"", RGB(0.4, 0.8, 0.6)},
	{"", RGB(0.4, 0.6, 0.8)},
	{"", RGB(0.6, 0.4, 0.8)},
	{"", RGB(0.8, 0.4, 0.6)},
	{"", RGB(0.9, 0.7, 0.5)},
	{"", RGB(0.7, 0.9, 0.5)},
}
