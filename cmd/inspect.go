package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/tunepack/encode"
	"github.com/jsphweid/tunepack/midi"
	"github.com/jsphweid/tunepack/pipeline"
	"github.com/jsphweid/tunepack/track"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Prints the reduced track",
	Long:  `Prints the reduced track and the compressed header without writing anything`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(cmd.OutOrStdout(), args[0])
	},
}

func inspect(w io.Writer, path string) error {
	log := newLogger()
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}

	t := pipeline.Normalize(midi.GetNoteEvents(s, log), midi.NewTempoMap(s), pipeline.DefaultOptions(), log)
	fmt.Fprintln(w, "=========== Track ===========")
	track.Dump(w, t)

	c, err := encode.Build(t, log)
	if err != nil {
		return err
	}
	h := c.Header
	fmt.Fprintln(w, "\n=========== Compressed Track Header ===========")
	fmt.Fprintf(w, "Notes: %v\n", h.NumNotes)
	fmt.Fprintf(w, "Unique Semitones: %v\n", h.NumUniquePitches)
	fmt.Fprintf(w, "Unique Durations: %v\n", h.NumUniqueDurations)
	fmt.Fprintf(w, "Bits Per Semitone: %v\n", h.BitsPerPitchIndex)
	fmt.Fprintf(w, "Bits Per Duration: %v\n", h.BitsPerDurationIndex)
	fmt.Fprintf(w, "Packed Bytes: %v\n", len(c.PackedPitches)+len(c.PackedDurations))
	return nil
}
