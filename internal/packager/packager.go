// Package packager writes generated site files to disk and bundles them into a zip.
package packager

import (
	"archive/zip"
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"ai_site_builder/internal/types"
	"ai_site_builder/internal/utils"
)

const (
	IndexFile   = "index.html"
	StyleFile   = "style.css"
	ScriptFile  = "script.js"
	ArchiveFile = "zipfile.zip"
	// DownloadName is the file name offered to the browser for the archive.
	DownloadName = "website.zip"
)

// SiteFiles are the generated file names, in archive order.
var SiteFiles = []string{IndexFile, StyleFile, ScriptFile}

// Packager owns the fixed output layout inside outputDir.
// Every Package call overwrites the previous output; there is no locking.
type Packager struct {
	outputDir string
}

func New(outputDir string) *Packager {
	if outputDir == "" {
		outputDir = "."
	}
	return &Packager{outputDir: outputDir}
}

// ArchivePath is where the last archive was written.
func (p *Packager) ArchivePath() string {
	return filepath.Join(p.outputDir, ArchiveFile)
}

// Files turns a parsed bundle into the three generated files.
func Files(bundle types.OutputBundle) []types.GeneratedFile {
	contents := []string{bundle.HTML, bundle.CSS, bundle.JS}
	files := make([]types.GeneratedFile, len(SiteFiles))
	for i, name := range SiteFiles {
		files[i] = types.GeneratedFile{
			Filename: name,
			Type:     utils.DetermineFileType(name),
			Content:  contents[i],
		}
	}
	return files
}

// Package writes index.html, style.css and script.js, then zipfile.zip holding
// exactly those three entries. It returns the archive bytes.
func (p *Packager) Package(bundle types.OutputBundle) ([]byte, error) {
	if err := os.MkdirAll(p.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	files := Files(bundle)
	for _, f := range files {
		path := filepath.Join(p.outputDir, f.Filename)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write file %s: %w", path, err)
		}
		log.Printf("File saved: %s", path)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range files {
		w, err := zw.Create(f.Filename)
		if err != nil {
			return nil, fmt.Errorf("failed to add %s to archive: %w", f.Filename, err)
		}
		if _, err := w.Write([]byte(f.Content)); err != nil {
			return nil, fmt.Errorf("failed to add %s to archive: %w", f.Filename, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}

	if err := os.WriteFile(p.ArchivePath(), buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write archive: %w", err)
	}
	log.Printf("Archive saved: %s (%d bytes)", p.ArchivePath(), buf.Len())

	return buf.Bytes(), nil
}

// ReadFile returns one of the generated files. Only the fixed names are served.
func (p *Packager) ReadFile(name string) ([]byte, error) {
	for _, allowed := range SiteFiles {
		if name == allowed {
			return os.ReadFile(filepath.Join(p.outputDir, name))
		}
	}
	return nil, fmt.Errorf("unknown site file %q: %w", name, os.ErrNotExist)
}
