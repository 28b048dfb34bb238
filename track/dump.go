package track

import (
	"fmt"
	"io"

	"github.com/jsphweid/tunepack/model"
)

func Dump(w io.Writer, t model.Track) {
	for _, note := range t.Notes {
		fmt.Fprintln(w, note.String())
	}
}
