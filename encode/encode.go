// Package encode turns a normalized track into lookup tables plus two
// bit packed index streams.
package encode

import (
	"math"

	"github.com/dustin/go-humanize"
	"github.com/jsphweid/tunepack/bitpack"
	"github.com/jsphweid/tunepack/model"
	"github.com/jsphweid/tunepack/util"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// pitch 49 is A at 440Hz
const (
	referencePitch = 49
	referenceFreq  = 440.0
)

// Frequency returns the equal tempered frequency of pitch, rounded to Hz.
func Frequency(pitch int) uint32 {
	if pitch == model.RestSentinel {
		return 0
	}
	return uint32(math.Round(referenceFreq * math.Pow(2, float64(pitch-referencePitch)/12)))
}

// Build encodes track. Durations are copied as raw ticks; converting them to
// real time is left to whoever consumes the tables.
func Build(track model.Track, log logrus.FieldLogger) (*model.CompressedTrack, error) {
	log = util.OrDiscard(log)
	if len(track.Notes) == 0 {
		return nil, newError(EmptyTrack, "track has no notes")
	}

	pitches := NewDictionary[int]()
	durations := NewDictionary[uint32]()
	pitchIndices := make([]uint32, len(track.Notes))
	durationIndices := make([]uint32, len(track.Notes))
	for i, note := range track.Notes {
		pitchIndices[i] = pitches.Add(note.PitchKey())
		durationIndices[i] = durations.Add(note.Duration)
	}

	bitsPerPitch, err := BitsFor(pitches.Len())
	if err != nil {
		return nil, errors.Wrap(err, "pitch dictionary")
	}
	bitsPerDuration, err := BitsFor(durations.Len())
	if err != nil {
		return nil, errors.Wrap(err, "duration dictionary")
	}

	var c model.CompressedTrack
	c.Header = model.Header{
		NumNotes:             len(track.Notes),
		NumUniquePitches:     pitches.Len(),
		NumUniqueDurations:   durations.Len(),
		BitsPerPitchIndex:    bitsPerPitch,
		BitsPerDurationIndex: bitsPerDuration,
	}

	c.PitchFrequencies = make([]uint32, pitches.Len())
	for i, p := range pitches.Keys() {
		c.PitchFrequencies[i] = Frequency(p)
	}
	c.Durations = make([]uint32, durations.Len())
	copy(c.Durations, durations.Keys())

	c.PitchIndices = pitchIndices
	c.DurationIndices = durationIndices
	c.PackedPitches = bitpack.Pack(pitchIndices, bitsPerPitch)
	c.PackedDurations = bitpack.Pack(durationIndices, bitsPerDuration)

	log.WithFields(logrus.Fields{
		"notes":            c.Header.NumNotes,
		"unique_pitches":   c.Header.NumUniquePitches,
		"unique_durations": c.Header.NumUniqueDurations,
		"pitch_bits":       bitsPerPitch,
		"duration_bits":    bitsPerDuration,
		"pitch_stream":     humanize.Bytes(uint64(len(c.PackedPitches))),
		"duration_stream":  humanize.Bytes(uint64(len(c.PackedDurations))),
	}).Info("Built compressed track")

	return &c, nil
}
