package constants

import (
	"os"
	"time"
)

func GetOutDir() string {
	path := os.Getenv("OUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

func GetListenAddr() string {
	addr := os.Getenv("ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

func GetLogLevel() string {
	return os.Getenv("LOG_LEVEL")
}

const OutputFilename = "track_codegen.h"

var MidiSuffixes = []string{".mid", ".midi"}

// rests shorter than this many ticks get folded into the previous note
const DefaultMergeThreshold = 30

// silence forced between two repeated pitches
const DefaultSeparationGap = 20 * time.Millisecond

// largest request body accepted by the serve command
const MaxUploadSize = 8 * 1024 * 1024
