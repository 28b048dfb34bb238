package midi

import (
	"sort"
	"time"

	"gitlab.com/gomidi/midi/v2/smf"
)

// TempoMap answers tick/time questions for one file, starting from tick 0.
type TempoMap struct {
	s *smf.SMF
}

func NewTempoMap(s *smf.SMF) *TempoMap {
	return &TempoMap{s: s}
}

func (m *TempoMap) TimeAt(ticks uint32) time.Duration {
	return time.Duration(m.s.TimeAt(int64(ticks))) * time.Microsecond
}

// TicksFor returns the tick count whose elapsed time from the start of the
// file is closest to d.
func (m *TempoMap) TicksFor(d time.Duration) uint32 {
	if d <= 0 {
		return 0
	}
	// upper bound: double until we pass d
	hi := 1
	for m.TimeAt(uint32(hi)) < d {
		if hi >= 1<<30 {
			return uint32(hi)
		}
		hi *= 2
	}
	t := sort.Search(hi+1, func(i int) bool {
		return m.TimeAt(uint32(i)) >= d
	})
	if t > 0 && d-m.TimeAt(uint32(t-1)) < m.TimeAt(uint32(t))-d {
		t--
	}
	return uint32(t)
}
