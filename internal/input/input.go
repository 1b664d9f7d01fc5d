// Package input loads text files to feed into a lab.
package input

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// MaxFileSize caps what Load reads
const MaxFileSize = 1 << 20

var (
	ErrTooLarge = errors.New("file too large")
	ErrNotText  = errors.New("file is not UTF-8 text")
)

// Text is the content of a loaded file
type Text struct {
	Content  string
	Metadata Metadata
}

// Metadata describes a loaded file
type Metadata struct {
	Title         string `json:"title"`
	SourcePath    string `json:"source_path"`
	FileSizeBytes int64  `json:"file_size_bytes"`
	WordCount     int    `json:"word_count"`
}

// FileSizeHuman returns human-readable file size
func (m Metadata) FileSizeHuman() string {
	bytes := m.FileSizeBytes
	if bytes < 1024 {
		return fmt.Sprintf("%d B", bytes)
	}
	if bytes < 1024*1024 {
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	}
	return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
}

// Load reads a plain text or markdown file. Trailing newlines are dropped.
func Load(path string) (*Text, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("%s: %w (%d bytes, limit %d)", path, ErrTooLarge, info.Size(), MaxFileSize)
	}

	b, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if !utf8.Valid(b) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotText)
	}

	content := strings.TrimRight(string(b), "\r\n")
	return &Text{
		Content: content,
		Metadata: Metadata{
			Title:         strings.TrimSuffix(filepath.Base(absPath), filepath.Ext(absPath)),
			SourcePath:    absPath,
			FileSizeBytes: info.Size(),
			WordCount:     len(strings.Fields(content)),
		},
	}, nil
}
