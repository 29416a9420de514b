package history

import (
	"fmt"
	"path/filepath"

	"github.com/lox/chippiles/internal/fileutil"
)

// Writer persists finished transcripts.
type Writer interface {
	WriteTranscript(matchID string, content string) error
}

// FileWriter writes each transcript to <directory>/match_<id>.txt
type FileWriter struct {
	directory string
}

// NewFileWriter creates a new file-based transcript writer
func NewFileWriter(directory string) *FileWriter {
	return &FileWriter{directory: directory}
}

// Path returns the file a transcript with the given id is written to.
func (w *FileWriter) Path(matchID string) string {
	return filepath.Join(w.directory, fmt.Sprintf("match_%s.txt", matchID))
}

// WriteTranscript writes the transcript atomically, creating the directory
// if needed.
func (w *FileWriter) WriteTranscript(matchID string, content string) error {
	if err := fileutil.WriteFileAtomic(w.Path(matchID), []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}
	return nil
}

// NoOpWriter discards transcripts. Used when transcripts are disabled.
type NoOpWriter struct{}

// WriteTranscript does nothing
func (NoOpWriter) WriteTranscript(string, string) error {
	return nil
}

var (
	_ Writer = (*FileWriter)(nil)
	_ Writer = NoOpWriter{}
)
