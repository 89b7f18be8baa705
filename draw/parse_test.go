package draw

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

func TestParseRoundTrip(t *testing.T) {
	events := []PathEvent{
		MoveTo{1, 2},
		LineTo{3, 4},
		QuadTo{0.1, -0.2, 1e-9, 3e12},
		CubicTo{1.0 / 3, 2.0 / 3, -7, 8, 9.5, 10.25},
		Close{},
	}
	var rec Recorder
	Replay(&rec, events...)

	got, err := Parse(rec.String())
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", rec.String(), err)
	}
	if !reflect.DeepEqual(got, events) {
		t.Errorf("Parse() = %v, want %v", got, events)
	}
}

func TestParseRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	coord := func() float32 {
		return (rng.Float32() - 0.5) * float32(uint32(1)<<rng.Intn(24))
	}

	var events []PathEvent
	for i := 0; i < 500; i++ {
		switch rng.Intn(5) {
		case 0:
			events = append(events, MoveTo{coord(), coord()})
		case 1:
			events = append(events, LineTo{coord(), coord()})
		case 2:
			events = append(events, QuadTo{coord(), coord(), coord(), coord()})
		case 3:
			events = append(events, CubicTo{coord(), coord(), coord(), coord(), coord(), coord()})
		default:
			events = append(events, Close{})
		}
	}

	var rec Recorder
	Replay(&rec, events...)
	got, err := Parse(rec.String())
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(got) != len(events) {
		t.Fatalf("Parse() returned %d events, want %d", len(got), len(events))
	}
	for i := range events {
		if got[i] != events[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], events[i])
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		offset int
	}{
		{"unknown command", "M1,2X", 4},
		{"missing comma", "M1 2", 2},
		{"missing number", "L,2", 1},
		{"quad missing space", "Q1,1,2,2", 4},
		{"cubic truncated", "C1,1 2,2", 8},
		{"bad number", "M1..2,3", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.in)
			if err == nil {
				t.Fatalf("Parse(%q) = nil error, want SyntaxError", tt.in)
			}
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("Parse(%q) error %T, want *SyntaxError", tt.in, err)
			}
			if se.Offset != tt.offset {
				t.Errorf("Offset = %d, want %d (%v)", se.Offset, tt.offset, err)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	got, err := Parse("")
	if err != nil {
		t.Fatalf("Parse(\"\") error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Parse(\"\") = %v, want no events", got)
	}
}
