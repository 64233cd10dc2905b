package testutil

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// SampleCSV is a small batting file covering both leagues and a player
// with multiple seasons.
const SampleCSV = "id,year,team,lg,g,ab,h,hr,rbi,sb,so,bb,hbp,sh,sf\n" +
	"aaronha01,1954,ML1,NL,122,468,131,13,69,2,39,28,3,6,4\n" +
	"aaronha01,1955,ML1,NL,153,602,189,27,106,3,61,49,3,7,4\n" +
	"mantlmi01,1955,NYA,AL,147,517,158,37,99,8,97,113,3,2,4\n"

// WriteDatasetCSV writes SampleCSV into a temp dir and returns its path.
func WriteDatasetCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "baseball.csv")
	if err := os.WriteFile(path, []byte(SampleCSV), 0o644); err != nil {
		t.Fatalf("write dataset fixture: %v", err)
	}
	return path
}

// NewBufferLogger returns a slog logger backed by a buffer and the buffer for assertions.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	return logger, &buf
}

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
