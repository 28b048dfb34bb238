// Package codegen renders a compressed track as an Arduino header.
package codegen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsphweid/tunepack/model"
	"github.com/pkg/errors"
)

func joinInts(values []uint32) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ", ")
}

func joinHex(values []byte) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("0x%02X", v)
	}
	return strings.Join(parts, ", ")
}

const banner = "// ============================================================================\n"

func WriteHeader(w io.Writer, c *model.CompressedTrack) error {
	h := c.Header
	var b strings.Builder

	b.WriteString("#pragma once\n\n")
	b.WriteString("#include <Arduino.h>\n")
	b.WriteString("#include <inttypes.h>\n\n")
	b.WriteString(banner)
	b.WriteString("// ------------------------ Autogenerated by tunepack -------------------------\n")
	b.WriteString(banner)
	b.WriteString("\n")

	b.WriteString("// Compressed track header\n")
	fmt.Fprintf(&b, "#define NUM_NOTES %d\n", h.NumNotes)
	fmt.Fprintf(&b, "#define NUM_UNIQUE_SEMITONES %d\n", h.NumUniquePitches)
	fmt.Fprintf(&b, "#define NUM_UNIQUE_DURATIONS %d\n", h.NumUniqueDurations)
	fmt.Fprintf(&b, "#define BITS_PER_SEMITONE %d\n", h.BitsPerPitchIndex)
	fmt.Fprintf(&b, "#define BITS_PER_DURATION %d\n\n", h.BitsPerDurationIndex)

	b.WriteString("// Mapping tables\n")
	fmt.Fprintf(&b, "const PROGMEM uint32_t semitoneFrequencyTable[NUM_UNIQUE_SEMITONES] = {%s};\n", joinInts(c.PitchFrequencies))
	fmt.Fprintf(&b, "const PROGMEM uint32_t durationMsTable[NUM_UNIQUE_DURATIONS] = {%s};\n\n", joinInts(c.Durations))

	b.WriteString("// Raw compressed data\n")
	fmt.Fprintf(&b, "#define COMPRESSED_SEMITONES_SIZE %d\n", len(c.PackedPitches))
	fmt.Fprintf(&b, "#define COMPRESSED_DURATIONS_SIZE %d\n", len(c.PackedDurations))
	fmt.Fprintf(&b, "const PROGMEM uint8_t compressedSemitones[COMPRESSED_SEMITONES_SIZE] = {%s};\n", joinHex(c.PackedPitches))
	fmt.Fprintf(&b, "const PROGMEM uint8_t compressedDurations[COMPRESSED_DURATIONS_SIZE] = {%s};\n\n", joinHex(c.PackedDurations))

	b.WriteString(banner)
	b.WriteString("// Uncompressed Track Data\n")
	b.WriteString("// frequency (Hz), duration (ms)\n")
	b.WriteString(banner)
	for i := 0; i < h.NumNotes; i++ {
		freq := c.PitchFrequencies[c.PitchIndices[i]]
		dur := c.Durations[c.DurationIndices[i]]
		fmt.Fprintf(&b, "// %d\t %d\n", freq, dur)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteHeaderFile creates any missing directories in path.
func WriteHeaderFile(path string, c *model.CompressedTrack) error {
	if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		return errors.Wrap(err, "create output dir")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create header")
	}
	defer f.Close()

	if err := WriteHeader(f, c); err != nil {
		return errors.Wrapf(err, "write %v", path)
	}
	return f.Close()
}
