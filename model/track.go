package model

import "time"

// TempoMap converts real time into ticks for a specific midi file.
type TempoMap interface {
	TicksFor(d time.Duration) uint32
}

// Track is a monophonic line of notes. Order is time.
type Track struct {
	Notes []RawNote
	Tempo TempoMap
}
