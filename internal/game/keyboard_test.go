package game

import (
	"testing"

	"github.com/sstandre/tuidle/internal/words"
)

func TestKeyboardNeverDowngrades(t *testing.T) {
	var k Keyboard
	k.Merge(Observation{'A', Correct}, Observation{'A', Maybe})
	if h, _ := k.Hint('A'); h != Correct {
		t.Errorf("A = %v after Correct, Maybe; want Correct", h)
	}
	k.Merge(Observation{'B', Incorrect}, Observation{'B', Correct})
	if h, _ := k.Hint('B'); h != Correct {
		t.Errorf("B = %v after Incorrect, Correct; want Correct", h)
	}
	if _, ok := k.Hint('Z'); ok {
		t.Error("Z should have no information")
	}
}

func TestKeyboardOrderIndependent(t *testing.T) {
	all := []Hint{Incorrect, Maybe, Correct}
	perms := [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	for _, p := range perms {
		for n := 1; n <= 3; n++ {
			var k Keyboard
			want := Incorrect
			for _, i := range p[:n] {
				k.Merge(Observation{'Q', all[i]})
				want = MaxHint(want, all[i])
			}
			if got, _ := k.Hint('Q'); got != want {
				t.Errorf("perm %v[:%d]: got %v, want %v", p, n, got, want)
			}
		}
	}
}

func TestKeyboardIdempotent(t *testing.T) {
	obs := Observations("LLAMA", GuessResult{Maybe, Correct, Maybe, Incorrect, Incorrect})
	var once, twice Keyboard
	once.Merge(obs...)
	twice.Merge(obs...)
	twice.Merge(obs...)

	a, b := once.Snapshot(), twice.Snapshot()
	if len(a) != len(b) {
		t.Fatalf("snapshots differ: %v vs %v", a, b)
	}
	for l, h := range a {
		if b[l] != h {
			t.Errorf("%c: %v vs %v", l, h, b[l])
		}
	}
	// L seen as Maybe then Correct; M and A resolved by their best hint.
	if a['L'] != Correct || a['A'] != Maybe || a['M'] != Incorrect {
		t.Errorf("unexpected snapshot %v", a)
	}
}

func TestKeyboardSnapshotIsCopy(t *testing.T) {
	var k Keyboard
	k.Merge(Observation{'A', Maybe})
	snap := k.Snapshot()
	snap['A'] = Incorrect
	snap['B'] = Correct
	if h, _ := k.Hint('A'); h != Maybe || k.Len() != 1 {
		t.Error("mutating a snapshot changed the keyboard")
	}
}

func TestObservations(t *testing.T) {
	obs := Observations(words.Word("AB"), GuessResult{Correct, Maybe, Maybe})
	if len(obs) != 2 || obs[0] != (Observation{'A', Correct}) || obs[1] != (Observation{'B', Maybe}) {
		t.Errorf("Observations = %v", obs)
	}
}
