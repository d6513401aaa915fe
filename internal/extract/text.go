package extract

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Text decodes bytes as UTF-8, dropping invalid sequences.
type Text struct{}

func (Text) Extract(data []byte) (string, error) {
	return strings.ToValidUTF8(string(data), ""), nil
}

// Unknown is the fallback for unrecognised uploads: a lenient UTF-8 decode.
type Unknown struct{}

func (Unknown) Extract(data []byte) (string, error) {
	return Text{}.Extract(data)
}

// JSON validates the document and re-indents it with two spaces. Key order is kept.
type JSON struct{}

func (JSON) Extract(data []byte) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(data), "", "  "); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Image yields no text; OCR is not supported.
type Image struct{}

func (Image) Extract([]byte) (string, error) {
	return "", nil
}
