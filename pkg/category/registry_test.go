package category

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/chrono/pkg/palette"
	"tableflip.dev/chrono/pkg/store"
)

// brokenPersistence fails every write, reads come back empty.
type brokenPersistence struct {
	store.Persistence
	writes int
}

func (b *brokenPersistence) Read(string) ([]byte, error) { return nil, store.ErrNotFound }

func (b *brokenPersistence) Write(string, []byte) error {
	b.writes++
	return errors.New("disk full")
}

func colorPtr(c palette.Color) *palette.Color { return &c }

func TestSeedOnFirstRun(t *testing.T) {
	r := NewRegistry(store.NewMemory(), nil)

	assert.Equal(t, []string{"cardio", "energy", "focus", "health", "outdoor", "sport", "supplement", "work"}, r.List())
	assert.Len(t, DefaultNames, 8)
	for _, name := range DefaultNames {
		_, ok := r.Lookup(name)
		assert.True(t, ok, name)
	}
	assert.Equal(t, palette.Pink, r.Get("sport"))
}

func TestSeedColorsDistinct(t *testing.T) {
	seen := map[palette.Color]string{}
	for name, c := range Defaults() {
		if other, dup := seen[c]; dup {
			t.Fatalf("%s and %s share a color", name, other)
		}
		seen[c] = name
	}
}

func TestGetFallsBack(t *testing.T) {
	r := NewRegistry(nil, nil)
	assert.Equal(t, palette.Unassigned, r.Get("unknown"))
	assert.Equal(t, palette.Unassigned, r.Get(""))
}

func TestAddThenGet(t *testing.T) {
	r := NewRegistry(store.NewMemory(), nil)
	c := palette.RGB(0.1, 0.2, 0.3)

	require.NoError(t, r.Add("  reading ", &c))
	assert.Equal(t, c, r.Get("reading"))
	assert.Equal(t, c, r.Get(" reading"))
	assert.Contains(t, r.List(), "reading")
}

func TestAddDuplicateLeavesRegistryUnchanged(t *testing.T) {
	r := NewRegistry(store.NewMemory(), nil)
	before := r.Colors()

	err := r.Add("work", colorPtr(palette.Red))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateCategory)
	assert.Equal(t, before, r.Colors())
	assert.Equal(t, palette.Blue, r.Get("work"))
}

func TestAddInvalidInput(t *testing.T) {
	r := NewRegistry(store.NewMemory(), nil)
	before := r.Colors()

	assert.ErrorIs(t, r.Add("   ", colorPtr(palette.Red)), ErrInvalidInput)
	assert.ErrorIs(t, r.Add("", colorPtr(palette.Red)), ErrInvalidInput)
	assert.ErrorIs(t, r.Add("reading", nil), ErrInvalidInput)
	assert.Equal(t, before, r.Colors())
}

func TestAddPersistsImmediately(t *testing.T) {
	mem := store.NewMemory()
	r := NewRegistry(mem, nil)
	c := palette.RGB(0.25, 0.5, 0.75)
	require.NoError(t, r.Add("reading", &c))

	reloaded := NewRegistry(mem, nil)
	assert.Equal(t, r.Colors(), reloaded.Colors())
	assert.Equal(t, c, reloaded.Get("reading"))
	assert.Equal(t, []string{Key}, mem.Keys(context.Background()))
}

func TestPersistFailureIsNotFatal(t *testing.T) {
	p := &brokenPersistence{}
	r := NewRegistry(p, nil)

	require.NoError(t, r.Add("reading", colorPtr(palette.Mint)))
	assert.Equal(t, 1, p.writes)
	assert.Equal(t, palette.Mint, r.Get("reading"))
}

func TestCorruptDocumentFallsBackToSeed(t *testing.T) {
	mem := store.NewMemory()
	require.NoError(t, mem.Write(Key, []byte("{not json")))

	r := NewRegistry(mem, nil)
	assert.Equal(t, Defaults(), r.Colors())
}

func TestPersistedRegistryReplacesSeed(t *testing.T) {
	mem := store.NewMemory()
	require.NoError(t, mem.Write(Key, []byte(`{"only":{"r":1,"g":0,"b":0}}`)))

	r := NewRegistry(mem, nil)
	assert.Equal(t, []string{"only"}, r.List())
	assert.Equal(t, palette.RGB(1, 0, 0), r.Get("only"))
	assert.Equal(t, palette.Unassigned, r.Get("sport"))
}

func TestTagColor(t *testing.T) {
	r := NewRegistry(store.NewMemory(), nil)

	// registered category wins over the calendar group
	assert.Equal(t, palette.Cyan, r.TagColor("cardio"))
	assert.Equal(t, palette.Pink, r.TagColor("fitness"))
	assert.Equal(t, palette.Blue, r.TagColor("urgent"))
	assert.Equal(t, palette.Unassigned, r.TagColor("misc"))

	g, ok := GroupOf("leisure")
	require.True(t, ok)
	assert.Equal(t, "time use", g.Name)
}
