package midi

import (
	"sort"

	"github.com/jsphweid/tunepack/model"
	"github.com/jsphweid/tunepack/util"
	"github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi/v2/smf"
)

type noteKey struct {
	channel uint8
	key     uint8
}

// GetNoteEvents pairs note ons with note offs across every track and returns
// the notes ordered by start tick.
func GetNoteEvents(s *smf.SMF, log logrus.FieldLogger) []model.NoteEvent {
	log = util.OrDiscard(log)

	var res []model.NoteEvent
	for trackNum, events := range s.Tracks {
		active := make(map[noteKey]int)
		var absTicks uint32
		for _, event := range events {
			absTicks += event.Delta
			var channel, key, velocity uint8
			var on, off bool
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				on = velocity > 0
				off = velocity == 0
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				off = true
			default:
				continue
			}

			nk := noteKey{channel, key}
			fields := logrus.Fields{"track": trackNum, "channel": channel, "key": key, "tick": absTicks}
			if on {
				if _, ok := active[nk]; ok {
					log.WithFields(fields).Warn("Note double pressed")
					continue
				}
				active[nk] = len(res)
				res = append(res, model.NoteEvent{Pitch: int(key), Start: absTicks})
			}
			if off {
				idx, ok := active[nk]
				if !ok {
					log.WithFields(fields).Warn("Note off for unpressed note")
					continue
				}
				delete(active, nk)
				res[idx].Duration = absTicks - res[idx].Start
			}
		}
		for nk, idx := range active {
			log.WithFields(logrus.Fields{
				"track":   trackNum,
				"channel": nk.channel,
				"key":     nk.key,
				"tick":    res[idx].Start,
			}).Warn("Missing note off, ending at track end")
			res[idx].Duration = absTicks - res[idx].Start
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Start != res[j].Start {
			return res[i].Start < res[j].Start
		}
		return res[i].Pitch < res[j].Pitch
	})
	return res
}
