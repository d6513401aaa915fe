// Package extract turns uploaded documents into plain text for prompt composition.
//
// Each supported format is an Extractor; Detect picks one from the upload's
// name, declared MIME type and, as a last resort, its sniffed content.
// Service.Run is the boundary used by the HTTP layer: it never returns an
// error, failures degrade to empty text plus a note for the user.
package extract

import (
	"fmt"
	"log"
	"mime"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"ai_site_builder/internal/types"

	"github.com/gabriel-vasile/mimetype"
)

// Kind identifies an extraction variant.
type Kind string

const (
	KindPDF     Kind = "pdf"
	KindText    Kind = "text"
	KindJSON    Kind = "json"
	KindDOCX    Kind = "docx"
	KindImage   Kind = "image"
	KindUnknown Kind = "unknown"
)

const docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

const imageNote = "Image uploaded. Text cannot be extracted from images or scanned PDFs because OCR is not supported."

const truncatedSuffix = "\n... [truncated]"

// Extractor converts raw file bytes into text.
type Extractor interface {
	Extract(data []byte) (string, error)
}

var extKinds = map[string]Kind{
	".pdf":  KindPDF,
	".txt":  KindText,
	".json": KindJSON,
	".docx": KindDOCX,
	".png":  KindImage,
	".jpg":  KindImage,
	".jpeg": KindImage,
}

// Detect picks the extraction variant for an upload. The file extension wins,
// then the declared MIME type. Content is sniffed only when the client sent
// no useful type.
func Detect(name, contentType string, data []byte) Kind {
	if kind, ok := extKinds[strings.ToLower(filepath.Ext(name))]; ok {
		return kind
	}
	if contentType != "" && !strings.HasPrefix(contentType, "application/octet-stream") {
		return kindForMediaType(contentType)
	}
	if len(data) == 0 {
		return KindUnknown
	}
	return kindForMediaType(mimetype.Detect(data).String())
}

func kindForMediaType(contentType string) Kind {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return KindUnknown
	}
	switch {
	case mediaType == "application/pdf":
		return KindPDF
	case mediaType == "text/plain":
		return KindText
	case mediaType == "application/json":
		return KindJSON
	case mediaType == docxMIME:
		return KindDOCX
	case strings.HasPrefix(mediaType, "image/"):
		return KindImage
	default:
		return KindUnknown
	}
}

// Options configures a Service.
type Options struct {
	// TempDir is where DOCX uploads are staged. Empty means os.TempDir().
	TempDir string
	// MaxChars caps the extracted text in runes. Zero disables the cap.
	MaxChars int
}

// Service dispatches uploads to the matching Extractor.
type Service struct {
	extractors map[Kind]Extractor
	maxChars   int
}

// NewService builds a Service with all built-in extractors.
func NewService(opts Options) *Service {
	return &Service{
		extractors: map[Kind]Extractor{
			KindPDF:     PDF{},
			KindText:    Text{},
			KindJSON:    JSON{},
			KindDOCX:    DOCX{TempDir: opts.TempDir},
			KindImage:   Image{},
			KindUnknown: Unknown{},
		},
		maxChars: opts.MaxChars,
	}
}

// Run extracts text from file. It always returns a result; OK is false when
// the extractor failed and Note explains why.
func (s *Service) Run(file types.UploadedFile) (result types.ExtractedText) {
	kind := Detect(file.Name, file.ContentType, file.Data)
	result.Kind = string(kind)

	defer func() {
		if r := recover(); r != nil {
			log.Printf("ERROR: %s extractor panicked on %s: %v", kind, file.Name, r)
			result = failed(kind, fmt.Errorf("%v", r))
		}
	}()

	text, err := s.extractors[kind].Extract(file.Data)
	if err != nil {
		log.Printf("WARN: extraction failed for %s (%s): %v", file.Name, kind, err)
		return failed(kind, err)
	}

	result.Text = text
	result.OK = true
	if kind == KindImage {
		result.Note = imageNote
		result.Level = types.NoteInfo
	}

	if s.maxChars > 0 && utf8.RuneCountInString(text) > s.maxChars {
		runes := []rune(text)
		result.Text = string(runes[:s.maxChars]) + truncatedSuffix
		result.Note = fmt.Sprintf("Extracted text was cut to %d characters.", s.maxChars)
		result.Level = types.NoteWarning
	}

	log.Printf("Info: extracted %d characters from %s (%s)", utf8.RuneCountInString(result.Text), file.Name, kind)
	return result
}

func failed(kind Kind, err error) types.ExtractedText {
	res := types.ExtractedText{Kind: string(kind)}
	if kind == KindPDF {
		res.Note = err.Error()
		res.Level = types.NoteWarning
		return res
	}
	res.Note = "Error while reading file: " + err.Error()
	res.Level = types.NoteError
	return res
}
