package model

import "fmt"

// RestSentinel is the pitch key a rest takes in the pitch dictionary.
const RestSentinel = -1

// NoteEvent is a single note pulled out of a midi file. Times are in ticks.
type NoteEvent struct {
	Pitch    int
	Start    uint32
	Duration uint32
}

// RawNote is either a sounding pitch or a rest, lasting Duration ticks.
type RawNote struct {
	Rest     bool
	Pitch    int
	Duration uint32
}

func Sound(pitch int, duration uint32) RawNote {
	return RawNote{Pitch: pitch, Duration: duration}
}

func Rest(duration uint32) RawNote {
	return RawNote{Rest: true, Duration: duration}
}

// PitchKey is the value used for dictionary lookups.
func (n RawNote) PitchKey() int {
	if n.Rest {
		return RestSentinel
	}
	return n.Pitch
}

func (n RawNote) String() string {
	return fmt.Sprintf("%v - %v", n.PitchKey(), n.Duration)
}
