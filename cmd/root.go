package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jsphweid/tunepack/codegen"
	"github.com/jsphweid/tunepack/midi"
	"github.com/jsphweid/tunepack/pipeline"
	"github.com/jsphweid/tunepack/util"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tunepack <file.mid>",
	Short: "Packs a midi melody for a microcontroller",
	Long: `Reduces a midi file to a single line of notes and writes it out as
lookup tables plus bit packed indices in an Arduino header.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger().WithField("run", uuid.New().String())
		path, err := Encode(args[0], log)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %v\n", path)
		return nil
	},
}

// Encode runs the whole pipeline on a midi file and writes the header,
// returning where it went.
func Encode(midiPath string, log logrus.FieldLogger) (string, error) {
	s, err := midi.ReadMidiFile(midiPath)
	if err != nil {
		return "", err
	}
	log.WithField("path", midiPath).Info("Loaded midi")

	events := midi.GetNoteEvents(s, log)
	c, err := pipeline.Run(events, midi.NewTempoMap(s), pipeline.DefaultOptions(), log)
	if err != nil {
		return "", errors.Wrap(err, "Could not encode track")
	}

	if _, err := util.EnsureOutputDir(); err != nil {
		return "", errors.Wrap(err, "Could not create output dir")
	}
	out := util.OutputPath()
	log.WithField("path", out).Info("Writing out codegen")
	if err := codegen.WriteHeaderFile(out, c); err != nil {
		return "", err
	}
	return out, nil
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
