package site

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestWatcher_PurgesOnChange(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"docs/intro.md": "# Intro\n"})

	var purges atomic.Int32
	w, err := NewWatcher(dir, func() error {
		purges.Add(1)
		return nil
	}, quietLogger())
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	w.debounce = 20 * time.Millisecond

	if err := w.Start(context.Background()); err != nil {
		w.Stop()
		t.Fatalf("start: %v", err)
	}

	// Several writes in a burst coalesce into a single purge.
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(filepath.Join(dir, "docs", "intro.md"), []byte("# Intro v2\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	deadline := time.Now().Add(5 * time.Second)
	for purges.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	w.Stop()

	if purges.Load() == 0 {
		t.Fatal("expected at least one purge after content change")
	}
}

func TestWatcher_StopWithoutEvents(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := NewWatcher(t.TempDir(), func() error { return nil }, quietLogger())
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	if err := w.Start(context.Background()); err != nil {
		w.Stop()
		t.Fatalf("start: %v", err)
	}
	w.Stop()
}
