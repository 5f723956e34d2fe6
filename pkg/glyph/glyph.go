package glyph

import "tableflip.dev/chrono/pkg/schedule"

type Glyph struct {
	Key     string `json:"key" yaml:"key"`
	Symbol  string `json:"symbol" yaml:"symbol"`
	Meaning string `json:"meaning" yaml:"meaning"`
	Order   int    `json:"-" yaml:"-"`
}

func (g Glyph) String() string {
	return g.Symbol
}

type Bullet int

const (
	Event Bullet = iota
	Task
	Completed
	Other
)

func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 4)

	g = append(g, Glyph{
		Key:     schedule.KindSchedule,
		Symbol:  "○",
		Meaning: "schedule, happens at a time of day",
		Order:   0,
	}, Glyph{
		Key:     schedule.KindTodo,
		Symbol:  "●",
		Meaning: "todo, something to get done",
		Order:   1,
	}, Glyph{
		Key:     "done",
		Symbol:  "✘",
		Meaning: "done",
		Order:   2,
	}, Glyph{
		Key:     "",
		Symbol:  "⁃",
		Meaning: "any other type",
		Order:   3,
	})

	return g
}

func (b Bullet) Glyph() Glyph {
	return DefaultGlyphs()[b]
}

func (b Bullet) String() string {
	return b.Glyph().String()
}

// For picks the bullet for an item; done items are always Completed.
func For(it schedule.Item, done bool) Bullet {
	switch {
	case done:
		return Completed
	case it.Kind() == schedule.KindSchedule:
		return Event
	case it.Kind() == schedule.KindTodo:
		return Task
	default:
		return Other
	}
}

// ByOrder sorts glyphs for legends.
type ByOrder []Glyph

func (a ByOrder) Len() int           { return len(a) }
func (a ByOrder) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a ByOrder) Less(i, j int) bool { return a[i].Order < a[j].Order }
