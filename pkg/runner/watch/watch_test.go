package watch

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/chrono/pkg/app"
	"tableflip.dev/chrono/pkg/schedule"
	"tableflip.dev/chrono/pkg/store"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchRerendersOnChange(t *testing.T) {
	color.NoColor = true
	mem := store.NewMemory()
	viewer := app.New(mem, nil)
	writer := app.New(mem, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := &syncBuffer{}
	w := Watch{List: schedule.ListPending, Service: viewer, Out: out}
	done := make(chan error, 1)
	go func() { done <- w.Do(ctx) }()

	waitFor(t, out, "Pending - 0 items")

	if _, err := writer.Add(app.Draft{Title: "Evening walk", At: "20:00"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	waitFor(t, out, "Evening walk")

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("watch returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestRelevant(t *testing.T) {
	w := Watch{List: schedule.ListDone}
	cases := map[store.Event]bool{
		{Type: store.EventInvalidated}:                   true,
		{Type: store.EventKeyChanged, Key: "done"}:       true,
		{Type: store.EventKeyChanged, Key: "categories"}: true,
		{Type: store.EventKeyChanged, Key: "pending"}:    false,
	}
	for ev, want := range cases {
		if got := w.relevant(ev); got != want {
			t.Errorf("relevant(%+v) = %v, want %v", ev, got, want)
		}
	}
}

func waitFor(t *testing.T, out *syncBuffer, want string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(out.String(), want) {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %q in:\n%s", want, out.String())
}
