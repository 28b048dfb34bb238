package track

import (
	"github.com/jsphweid/tunepack/model"
	"github.com/jsphweid/tunepack/util"
	"github.com/sirupsen/logrus"
)

// MergeGaps folds every rest shorter than maxMergeDuration into the note
// before it. A short rest at the very start has nothing to fold into and is
// left alone.
func MergeGaps(t *model.Track, maxMergeDuration uint32, log logrus.FieldLogger) {
	log = util.OrDiscard(log)

	var merged int
	for i := len(t.Notes) - 1; i >= 0; i-- {
		note := t.Notes[i]
		if !note.Rest || note.Duration >= maxMergeDuration {
			continue
		}
		if i == 0 {
			log.WithField("duration", note.Duration).Debug("Leaving short leading rest")
			continue
		}
		t.Notes[i-1].Duration += note.Duration
		t.Notes = append(t.Notes[:i], t.Notes[i+1:]...)
		merged++
	}

	log.WithFields(logrus.Fields{
		"merged":    merged,
		"threshold": maxMergeDuration,
	}).Debug("Merged short rests")
}
