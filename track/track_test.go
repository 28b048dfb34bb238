package track

import (
	"bytes"
	"testing"
	"time"

	"github.com/jsphweid/tunepack/model"
	"github.com/stretchr/testify/assert"
)

// one tick per millisecond
type msTempo struct{}

func (msTempo) TicksFor(d time.Duration) uint32 {
	return uint32(d.Milliseconds())
}

func assertNoAdjacentRests(t *testing.T, notes []model.RawNote) {
	for i := 1; i < len(notes); i++ {
		assert.False(t, notes[i-1].Rest && notes[i].Rest, "rests at %v and %v", i-1, i)
	}
}

func assertNoAdjacentRepeats(t *testing.T, notes []model.RawNote) {
	for i := 1; i < len(notes); i++ {
		a, b := notes[i-1], notes[i]
		assert.False(t, !a.Rest && !b.Rest && a.Pitch == b.Pitch, "repeat at %v and %v", i-1, i)
	}
}

func TestMergeGaps(t *testing.T) {
	tr := model.Track{Notes: []model.RawNote{
		model.Sound(60, 100),
		model.Rest(10),
		model.Sound(62, 100),
		model.Rest(30),
		model.Sound(64, 50),
		model.Rest(29),
	}}
	MergeGaps(&tr, 30, nil)

	assert.Equal(t, []model.RawNote{
		model.Sound(60, 110),
		model.Sound(62, 100),
		model.Rest(30),
		model.Sound(64, 79),
	}, tr.Notes)
	assertNoAdjacentRests(t, tr.Notes)
}

func TestMergeGapsKeepsShortLeadingRest(t *testing.T) {
	tr := model.Track{Notes: []model.RawNote{
		model.Rest(5),
		model.Sound(60, 100),
		model.Rest(5),
		model.Sound(61, 100),
	}}
	MergeGaps(&tr, 30, nil)

	assert.Equal(t, []model.RawNote{
		model.Rest(5),
		model.Sound(60, 105),
		model.Sound(61, 100),
	}, tr.Notes)
}

func TestMergeGapsEmptyTrack(t *testing.T) {
	var tr model.Track
	MergeGaps(&tr, 30, nil)
	assert.Empty(t, tr.Notes)
}

func TestSeparateRepeatsScenario(t *testing.T) {
	tr := model.Track{
		Notes: []model.RawNote{
			model.Sound(60, 100),
			model.Sound(60, 100),
			model.Rest(100),
			model.Sound(64, 50),
		},
		Tempo: msTempo{},
	}
	MergeGaps(&tr, 30, nil)
	assert.Len(t, tr.Notes, 4)

	SeparateRepeats(&tr, 20*time.Millisecond, SeparateEveryRepeat, nil)
	assert.Equal(t, []model.RawNote{
		model.Sound(60, 80),
		model.Rest(20),
		model.Sound(60, 100),
		model.Rest(100),
		model.Sound(64, 50),
	}, tr.Notes)
}

func TestSeparateEveryRepeatInRun(t *testing.T) {
	tr := model.Track{
		Notes: []model.RawNote{
			model.Sound(60, 100),
			model.Sound(60, 100),
			model.Sound(60, 100),
			model.Sound(60, 100),
		},
		Tempo: msTempo{},
	}
	SeparateRepeats(&tr, 10*time.Millisecond, SeparateEveryRepeat, nil)

	assert.Equal(t, []model.RawNote{
		model.Sound(60, 90),
		model.Rest(10),
		model.Sound(60, 90),
		model.Rest(10),
		model.Sound(60, 90),
		model.Rest(10),
		model.Sound(60, 100),
	}, tr.Notes)
	assertNoAdjacentRepeats(t, tr.Notes)
}

func TestSeparateAlternateRepeatsInRun(t *testing.T) {
	tr := model.Track{
		Notes: []model.RawNote{
			model.Sound(60, 100),
			model.Sound(60, 100),
			model.Sound(60, 100),
			model.Sound(62, 100),
			model.Sound(62, 100),
		},
		Tempo: msTempo{},
	}
	SeparateRepeats(&tr, 10*time.Millisecond, SeparateAlternateRepeats, nil)

	assert.Equal(t, []model.RawNote{
		model.Sound(60, 90),
		model.Rest(10),
		model.Sound(60, 100),
		model.Sound(60, 100),
		model.Sound(62, 90),
		model.Rest(10),
		model.Sound(62, 100),
	}, tr.Notes)
}

func TestSeparateClampsShortNotes(t *testing.T) {
	tr := model.Track{
		Notes: []model.RawNote{
			model.Sound(60, 15),
			model.Sound(60, 100),
			model.Sound(61, 1),
			model.Sound(61, 100),
		},
		Tempo: msTempo{},
	}
	SeparateRepeats(&tr, 20*time.Millisecond, SeparateEveryRepeat, nil)

	assert.Equal(t, []model.RawNote{
		model.Sound(60, 1),
		model.Rest(14),
		model.Sound(60, 100),
		model.Sound(61, 1),
		model.Sound(61, 100),
	}, tr.Notes)
}

func TestGapTicksIsAtLeastOne(t *testing.T) {
	tr := model.Track{Tempo: msTempo{}}
	assert.Equal(t, uint32(1), GapTicks(&tr, time.Microsecond))
	assert.Equal(t, uint32(20), GapTicks(&tr, 20*time.Millisecond))
	assert.Equal(t, uint32(1), GapTicks(&model.Track{}, 20*time.Millisecond))
}

func TestRepeatsSeparatedByRestAreLeftAlone(t *testing.T) {
	notes := []model.RawNote{model.Sound(60, 100), model.Rest(50), model.Sound(60, 100)}
	tr := model.Track{Notes: append([]model.RawNote{}, notes...), Tempo: msTempo{}}
	SeparateRepeats(&tr, 20*time.Millisecond, SeparateEveryRepeat, nil)
	assert.Equal(t, notes, tr.Notes)
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	Dump(&buf, model.Track{Notes: []model.RawNote{model.Sound(60, 80), model.Rest(20)}})
	assert.Equal(t, "60 - 80\n-1 - 20\n", buf.String())
}
