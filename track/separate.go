package track

import (
	"time"

	"github.com/jsphweid/tunepack/model"
	"github.com/jsphweid/tunepack/util"
	"github.com/sirupsen/logrus"
)

// RepeatPolicy decides which pairs in a run of equal pitches get split.
type RepeatPolicy int

const (
	// SeparateEveryRepeat splits every adjacent pair, so a run of n equal
	// notes gets n-1 rests.
	SeparateEveryRepeat RepeatPolicy = iota
	// SeparateAlternateRepeats skips the pair right after an inserted rest,
	// so only every other pair in a run is split.
	SeparateAlternateRepeats
)

func (p RepeatPolicy) String() string {
	switch p {
	case SeparateEveryRepeat:
		return "every"
	case SeparateAlternateRepeats:
		return "alternate"
	default:
		return "unknown"
	}
}

// GapTicks converts gap into ticks using the track's tempo map, never less
// than one tick.
func GapTicks(t *model.Track, gap time.Duration) uint32 {
	var ticks uint32
	if t.Tempo != nil {
		ticks = t.Tempo.TicksFor(gap)
	}
	return util.Max(ticks, 1)
}

// SeparateRepeats makes sure no two neighbouring notes share a pitch by
// carving a rest of gap out of the end of the first one. The first note is
// never shortened below one tick; the rest shrinks instead.
func SeparateRepeats(t *model.Track, gap time.Duration, policy RepeatPolicy, log logrus.FieldLogger) {
	log = util.OrDiscard(log)
	gapTicks := GapTicks(t, gap)

	var inserted int
	skipNext := false
	for i := 0; i+1 < len(t.Notes); i++ {
		a, b := t.Notes[i], t.Notes[i+1]
		if a.Rest || b.Rest || a.Pitch != b.Pitch {
			skipNext = false
			continue
		}
		if skipNext {
			skipNext = false
			continue
		}

		cut := gapTicks
		if a.Duration <= cut {
			cut = util.Max(a.Duration, 1) - 1
			log.WithFields(logrus.Fields{
				"index":    i,
				"pitch":    a.Pitch,
				"duration": a.Duration,
				"gap":      gapTicks,
			}).Warn("Note too short for full separation, clamping")
		}
		if cut == 0 {
			continue
		}

		t.Notes[i].Duration -= cut
		t.Notes = append(t.Notes, model.RawNote{})
		copy(t.Notes[i+2:], t.Notes[i+1:])
		t.Notes[i+1] = model.Rest(cut)
		inserted++

		// step over the rest we just added
		i++
		skipNext = policy == SeparateAlternateRepeats
	}

	log.WithFields(logrus.Fields{
		"inserted": inserted,
		"gap":      gapTicks,
		"policy":   policy,
	}).Debug("Separated repeated notes")
}
