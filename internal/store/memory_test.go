package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sstandre/tuidle/internal/game"
	"github.com/sstandre/tuidle/internal/words"
)

func newSession(t *testing.T) *game.Session {
	t.Helper()
	d := words.NewDictionary(5, []words.Word{"FOCUS", "CRANE", "SLATE"}, nil)
	s, err := game.New(d, game.WithPicker(words.Fixed("FOCUS")), game.WithMaxAttempts(100))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestCreateAndUpdate(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	id, err := m.Create(ctx, newSession(t))
	if err != nil {
		t.Fatal(err)
	}
	if id == "" || m.Len() != 1 {
		t.Fatalf("id=%q len=%d", id, m.Len())
	}

	err = m.Update(ctx, id, func(s *game.Session) error {
		_, err := s.SubmitGuess("CRANE")
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	var n int
	_ = m.View(ctx, id, func(s *game.Session) error {
		n = s.CurrentAttemptIndex()
		return nil
	})
	if n != 1 {
		t.Errorf("attempts = %d, want 1", n)
	}
}

func TestUpdatePropagatesError(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	id, _ := m.Create(ctx, newSession(t))
	err := m.Update(ctx, id, func(s *game.Session) error {
		_, err := s.SubmitGuess("ZZZZZ")
		return err
	})
	if !errors.Is(err, game.ErrNotInWordList) {
		t.Fatalf("err = %v", err)
	}
}

func TestNotFound(t *testing.T) {
	m := NewMemoryStore()
	err := m.View(context.Background(), "missing", func(*game.Session) error { return nil })
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := NewMemoryStore()
	if _, err := m.Create(ctx, newSession(t)); !errors.Is(err, context.Canceled) {
		t.Fatalf("Create err = %v", err)
	}
}

func TestConcurrentUpdatesSerialized(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	id, _ := m.Create(ctx, newSession(t))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Update(ctx, id, func(s *game.Session) error {
				_, err := s.SubmitGuess("SLATE")
				return err
			})
		}()
	}
	wg.Wait()

	_ = m.View(ctx, id, func(s *game.Session) error {
		if s.CurrentAttemptIndex() != 50 {
			t.Errorf("attempts = %d, want 50", s.CurrentAttemptIndex())
		}
		return nil
	})
}

func TestSweepAndDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return clock }

	old, _ := m.Create(ctx, newSession(t))
	clock = clock.Add(2 * time.Hour)
	fresh, _ := m.Create(ctx, newSession(t))

	if n := m.Sweep(time.Hour); n != 1 {
		t.Fatalf("Sweep removed %d, want 1", n)
	}
	if err := m.View(ctx, old, func(*game.Session) error { return nil }); !errors.Is(err, ErrNotFound) {
		t.Error("idle session survived sweep")
	}
	if err := m.Delete(ctx, fresh); err != nil {
		t.Fatal(err)
	}
	if m.Len() != 0 {
		t.Errorf("Len = %d after delete", m.Len())
	}
}
