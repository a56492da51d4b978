// Package media writes the artifact files the services produce: rendered
// transcript text, captured WAV audio and command output. Each kind lands in
// its own directory so the JSON stores only ever hold paths, never blobs.
package media

import (
	"fmt"
	"os"
	"path/filepath"
)

type Store struct {
	transcriptionsDir string
	recordingsDir     string
	outputsDir        string
}

// SaveTranscriptionFile implements transcript.MediaStore
func (s *Store) SaveTranscriptionFile(filename string, content []byte) (string, error) {
	return writeTo(s.transcriptionsDir, filename, content)
}

// SaveRecordingFile implements transcript.MediaStore
func (s *Store) SaveRecordingFile(filename string, content []byte) (string, error) {
	return writeTo(s.recordingsDir, filename, content)
}

// SaveOutput implements command.OutputWriter
func (s *Store) SaveOutput(filename string, content []byte) (string, error) {
	return writeTo(s.outputsDir, filename, content)
}

// Remove implements transcript.MediaStore. A file that is already gone is not
// an error; deletes are best-effort cleanup after the index entry went away.
func (s *Store) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}

func writeTo(dir, filename string, content []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}
	// Base strips any directory part so a crafted filename cannot escape dir.
	path := filepath.Join(dir, filepath.Base(filename))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// NewStore creates a media store writing each artifact kind to its own
// directory.
func NewStore(transcriptionsDir, recordingsDir, outputsDir string) *Store {
	return &Store{
		transcriptionsDir: transcriptionsDir,
		recordingsDir:     recordingsDir,
		outputsDir:        outputsDir,
	}
}
