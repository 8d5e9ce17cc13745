package config

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, FileName, "game:\n  tick_rate: 60\n")

	w, err := NewWatcher(path, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan Config, 16)
	go w.Run(ctx, func(c Config) { changes <- c })

	// An invalid edit is skipped, then a valid one is delivered.
	if err := os.WriteFile(path, []byte("game:\n  tick_rate: -5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("game:\n  tick_rate: 30\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	timeout := time.After(5 * time.Second)
	for {
		select {
		case c := <-changes:
			if c.Game.TickRate < 1 {
				t.Fatalf("invalid settings delivered: %+v", c.Game)
			}
			if c.Game.TickRate == 30 {
				return
			}
		case <-timeout:
			t.Fatal("no reload observed within 5s")
		}
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, FileName, "game:\n  tick_rate: 60\n")

	w, err := NewWatcher(path, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan Config, 4)
	go w.Run(ctx, func(c Config) { changes <- c })

	writeFile(t, dir, "other.yaml", "game:\n  tick_rate: 30\n")

	select {
	case c := <-changes:
		t.Errorf("unrelated file triggered a reload: %+v", c.Game)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestNewWatcherMissingDir(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "nope", FileName), log.New(io.Discard)); err == nil {
		t.Error("NewWatcher() should fail when the directory does not exist")
	}
}
