package daily

import (
	"errors"
	"testing"
	"time"

	"github.com/sstandre/tuidle/internal/words"
)

var pool = []words.Word{"CRANE", "SLATE", "FOCUS", "TRACE", "ALLOY", "LLAMA", "ROBOT", "SPEED"}

func at(t time.Time) Picker {
	return Picker{Salt: "salt", Now: func() time.Time { return t }}
}

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	ts := time.Date(2024, 3, 2, 5, 0, 0, 0, loc) // 2024-03-01 19:00 UTC
	if got := DateKey(ts); got != "2024-03-01" {
		t.Errorf("DateKey = %q, want 2024-03-01", got)
	}
	if got := at(ts).Today(); got != "2024-03-01" {
		t.Errorf("Today = %q, want 2024-03-01", got)
	}
}

func TestPickSameDay(t *testing.T) {
	morning, err := at(time.Date(2024, 6, 1, 0, 0, 1, 0, time.UTC)).Pick(pool)
	if err != nil {
		t.Fatal(err)
	}
	night, err := at(time.Date(2024, 6, 1, 23, 59, 59, 0, time.UTC)).Pick(pool)
	if err != nil {
		t.Fatal(err)
	}
	if morning != night {
		t.Errorf("same day gave %q and %q", morning, night)
	}
}

func TestPickVariesByDate(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	seen := map[words.Word]bool{}
	for d := 0; d < 30; d++ {
		w, err := at(start.AddDate(0, 0, d)).Pick(pool)
		if err != nil {
			t.Fatal(err)
		}
		seen[w] = true
	}
	if len(seen) < 2 {
		t.Errorf("30 days drew %d distinct words", len(seen))
	}
}

func TestPickDependsOnSalt(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for d := 0; d < 30; d++ {
		day := start.AddDate(0, 0, d)
		a, _ := at(day).Pick(pool)
		b, _ := Picker{Salt: "other", Now: func() time.Time { return day }}.Pick(pool)
		if a != b {
			return
		}
	}
	t.Error("salt had no effect over 30 days")
}

func TestPickEmptyPool(t *testing.T) {
	if _, err := at(time.Now()).Pick(nil); !errors.Is(err, words.ErrNoCandidates) {
		t.Errorf("Pick(nil) = %v, want ErrNoCandidates", err)
	}
}
