// Package pipeline runs note events through reduction, normalization and
// encoding.
package pipeline

import (
	"io"
	"time"

	"github.com/jsphweid/tunepack/chord"
	"github.com/jsphweid/tunepack/constants"
	"github.com/jsphweid/tunepack/encode"
	"github.com/jsphweid/tunepack/midi"
	"github.com/jsphweid/tunepack/model"
	"github.com/jsphweid/tunepack/track"
	"github.com/jsphweid/tunepack/util"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Options struct {
	// ticks
	MergeThreshold uint32
	SeparationGap  time.Duration
	RepeatPolicy   track.RepeatPolicy
}

func DefaultOptions() Options {
	return Options{
		MergeThreshold: constants.DefaultMergeThreshold,
		SeparationGap:  constants.DefaultSeparationGap,
		RepeatPolicy:   track.SeparateEveryRepeat,
	}
}

// Normalize builds the monophonic track that gets encoded.
func Normalize(events []model.NoteEvent, tempo model.TempoMap, opts Options, log logrus.FieldLogger) model.Track {
	log = util.OrDiscard(log)

	t := chord.Reduce(events, tempo, log)
	track.MergeGaps(&t, opts.MergeThreshold, log)
	track.SeparateRepeats(&t, opts.SeparationGap, opts.RepeatPolicy, log)
	return t
}

func Run(events []model.NoteEvent, tempo model.TempoMap, opts Options, log logrus.FieldLogger) (*model.CompressedTrack, error) {
	t := Normalize(events, tempo, opts, log)
	return encode.Build(t, log)
}

// RunMidi reads a standard midi file from rd and encodes it.
func RunMidi(rd io.Reader, opts Options, log logrus.FieldLogger) (*model.CompressedTrack, error) {
	log = util.OrDiscard(log)

	s, err := midi.ReadMidi(rd)
	if err != nil {
		return nil, err
	}
	events := midi.GetNoteEvents(s, log)
	log.WithField("events", len(events)).Info("Loaded midi")

	c, err := Run(events, midi.NewTempoMap(s), opts, log)
	if err != nil {
		return nil, errors.Wrap(err, "Could not encode track")
	}
	return c, nil
}
