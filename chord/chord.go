package chord

import (
	"github.com/jsphweid/tunepack/model"
	"github.com/jsphweid/tunepack/util"
	"github.com/sirupsen/logrus"
)

// Chord is a set of notes that start together and last equally long.
type Chord struct {
	Pitches  map[int]bool
	Start    uint32
	Duration uint32
}

func newChord(evt model.NoteEvent) *Chord {
	return &Chord{
		Pitches:  map[int]bool{evt.Pitch: true},
		Start:    evt.Start,
		Duration: evt.Duration,
	}
}

func (c *Chord) End() uint32 {
	return c.Start + c.Duration
}

func (c *Chord) Accepts(evt model.NoteEvent) bool {
	return evt.Start == c.Start && evt.Duration == c.Duration
}

// Top is the highest pitch in the chord.
func (c *Chord) Top() int {
	first := true
	var top int
	for p := range c.Pitches {
		if first || p > top {
			top = p
			first = false
		}
	}
	return top
}

type reducer struct {
	log   logrus.FieldLogger
	notes []model.RawNote

	// nil while idle
	current *Chord
}

func (r *reducer) appendRest(d uint32) {
	if n := len(r.notes); n > 0 && r.notes[n-1].Rest {
		r.notes[n-1].Duration += d
		return
	}
	r.notes = append(r.notes, model.Rest(d))
}

// closeChord commits the pending chord, cutting it short if the next note
// starts before it ends. next is nil at the end of the input.
func (r *reducer) closeChord(next *model.NoteEvent) {
	c := r.current
	r.current = nil
	if c == nil {
		return
	}

	if next != nil && next.Start < c.End() {
		r.log.WithFields(logrus.Fields{
			"start":    c.Start,
			"end":      c.End(),
			"next":     next.Start,
			"pitch":    c.Top(),
			"overlaps": next.Pitch,
		}).Warn("Overlapping note - this will be cut off early")
		c.Duration = next.Start - c.Start
	}

	if len(c.Pitches) > 0 {
		if c.Duration > 0 {
			r.notes = append(r.notes, model.Sound(c.Top(), c.Duration))
		} else {
			r.log.WithFields(logrus.Fields{
				"start": c.Start,
				"pitch": c.Top(),
			}).Warn("Dropping chord cut down to nothing")
		}
	}

	if next != nil && next.Start > c.End() {
		r.appendRest(next.Start - c.End())
	}
}

// Reduce collapses events into one monophonic line. events must be ordered
// by start time; out of order input gives undefined results.
func Reduce(events []model.NoteEvent, tempo model.TempoMap, log logrus.FieldLogger) model.Track {
	r := reducer{log: util.OrDiscard(log)}
	for i := range events {
		evt := events[i]
		if r.current != nil && r.current.Accepts(evt) {
			r.current.Pitches[evt.Pitch] = true
			continue
		}
		if r.current == nil && evt.Start > 0 {
			// silence before the first note
			r.appendRest(evt.Start)
		}
		r.closeChord(&evt)
		r.current = newChord(evt)
	}
	r.closeChord(nil)

	r.log.WithField("notes", len(r.notes)).Debug("Reduced events")
	return model.Track{Notes: r.notes, Tempo: tempo}
}
