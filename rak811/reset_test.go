package rak811_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/teepbee/go-rak811/rak811"
)

// fakeResetLine records the order of level changes.
type fakeResetLine struct {
	mu     sync.Mutex
	levels []string
	err    error
}

func (l *fakeResetLine) High() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.levels = append(l.levels, "high")
	return l.err
}

func (l *fakeResetLine) Low() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.levels = append(l.levels, "low")
	return l.err
}

func TestHardReset(t *testing.T) {
	t.Run("Pulses the line low then high", func(t *testing.T) {
		transport := rak811.NewTestTransport()
		line := &fakeResetLine{}

		config, err := rak811.NewConfigBuilder().
			WithDialer(testDialer{transport}).
			WithResetLine(line).
			Build()
		if err != nil {
			t.Fatalf("unexpected error from Build(): %v", err)
		}

		d, err := rak811.New(context.Background(), config)
		if err != nil {
			t.Fatalf("failed to create device: %v", err)
		}
		defer d.Close()

		if err := d.HardReset(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(line.levels) != 2 || line.levels[0] != "low" || line.levels[1] != "high" {
			t.Errorf("unexpected level sequence: %v", line.levels)
		}
	})

	t.Run("ErrNoResetLine without a configured line", func(t *testing.T) {
		transport := rak811.NewTestTransport()
		d := newTestDevice(t, transport)

		if err := d.HardReset(); !errors.Is(err, rak811.ErrNoResetLine) {
			t.Errorf("expected ErrNoResetLine, got: %v", err)
		}
	})

	t.Run("Pin error propagates", func(t *testing.T) {
		transport := rak811.NewTestTransport()
		line := &fakeResetLine{err: errors.New("pin busy")}

		config, err := rak811.NewConfigBuilder().
			WithDialer(testDialer{transport}).
			WithResetLine(line).
			Build()
		if err != nil {
			t.Fatalf("unexpected error from Build(): %v", err)
		}

		d, err := rak811.New(context.Background(), config)
		if err != nil {
			t.Fatalf("failed to create device: %v", err)
		}
		defer d.Close()

		if err := d.HardReset(); err == nil {
			t.Error("expected error from failing pin")
		}
	})
}
