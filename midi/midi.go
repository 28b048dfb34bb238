package midi

import (
	"bytes"
	"io"
	"os"

	"github.com/jsphweid/tunepack/util"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

var ErrNotMidiFile = errors.New("provided file is not a .mid")

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	if !util.HasMidiSuffix(filepath) {
		return nil, errors.Wrap(ErrNotMidiFile, filepath)
	}

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "Error reading midi file")
	}
	return ReadMidi(bytes.NewReader(dat))
}

func ReadMidi(rd io.Reader) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s = nil
			e = errors.Errorf("Error parsing midi file... %v", r)
		}
	}()

	res, err := smf.ReadFrom(rd)
	if err != nil {
		return nil, errors.Wrap(err, "Error parsing midi file")
	}
	return res, nil
}
