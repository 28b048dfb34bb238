package model

type Header struct {
	NumNotes             int `json:"num_notes"`
	NumUniquePitches     int `json:"num_unique_pitches"`
	NumUniqueDurations   int `json:"num_unique_durations"`
	BitsPerPitchIndex    int `json:"bits_per_pitch_index"`
	BitsPerDurationIndex int `json:"bits_per_duration_index"`
}

type CompressedTrack struct {
	Header Header `json:"header"`

	// frequency in Hz, 0 for a rest
	PitchFrequencies []uint32 `json:"pitch_frequencies"`
	// raw ticks, not converted to real time
	Durations []uint32 `json:"durations"`

	PitchIndices    []uint32 `json:"pitch_indices"`
	DurationIndices []uint32 `json:"duration_indices"`

	PackedPitches   []byte `json:"packed_pitches"`
	PackedDurations []byte `json:"packed_durations"`
}
