package util

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsphweid/tunepack/constants"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

// OrDiscard returns log, or a logger that drops everything when log is nil.
func OrDiscard(log logrus.FieldLogger) logrus.FieldLogger {
	if log != nil {
		return log
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func EnsureOutputDir() (string, error) {
	dir := constants.GetOutDir()
	if err := os.MkdirAll(dir, 0777); err != nil {
		return "", err
	}
	return dir, nil
}

func OutputPath() string {
	return filepath.Join(constants.GetOutDir(), constants.OutputFilename)
}

func HasMidiSuffix(path string) bool {
	for _, suffix := range constants.MidiSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Max[A constraints.Integer](num1 A, num2 A) A {
	if num1 < num2 {
		return num2
	}
	return num1
}

// CeilDiv assumes b > 0.
func CeilDiv[A constraints.Integer](a A, b A) A {
	return (a + b - 1) / b
}

func Sum[A constraints.Integer](nums []A) uint64 {
	var total uint64
	for _, v := range nums {
		total += uint64(v)
	}
	return total
}
