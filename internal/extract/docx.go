package extract

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"code.sajari.com/docconv/v2"
)

// DOCX stages the upload in a temp file and converts it with docconv.
type DOCX struct {
	TempDir string
}

// Extract always removes the staged file before returning.
func (d DOCX) Extract(data []byte) (string, error) {
	tmp, err := os.CreateTemp(d.TempDir, "upload-*.docx")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	path := tmp.Name()
	defer func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Printf("WARN: failed to remove temp file %s: %v", path, err)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open temp file: %w", err)
	}
	defer f.Close()

	text, _, err := docconv.ConvertDocx(f)
	if err != nil {
		return "", fmt.Errorf("not a readable docx: %w", err)
	}
	return tidyLines(text), nil
}

// tidyLines trims every line and drops the blank ones left by XML indentation.
func tidyLines(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
