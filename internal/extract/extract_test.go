package extract

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ai_site_builder/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDocx(t *testing.T, parts map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range parts {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
    <w:p><w:r><w:t>Skills:</w:t><w:tab/><w:t xml:space="preserve">Go, SQL</w:t></w:r></w:p>
    <w:p><w:r><w:t>line one</w:t><w:br/><w:t>line two</w:t></w:r></w:p>
  </w:body>
</w:document>`

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
  <Override PartName="/word/header1.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.header+xml"/>
  <Override PartName="/word/footer1.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml"/>
</Types>`

func assertDirEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temp files left behind in %s", dir)
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		contentType string
		data        []byte
		want        Kind
	}{
		{"pdf by extension", "CV.PDF", "", nil, KindPDF},
		{"txt by extension", "notes.txt", "application/octet-stream", nil, KindText},
		{"json by extension", "data.json", "text/plain", nil, KindJSON},
		{"docx by extension", "resume.docx", "", nil, KindDOCX},
		{"jpeg by extension", "me.jpeg", "", nil, KindImage},
		{"docx by mime", "upload", docxMIME, nil, KindDOCX},
		{"image by mime", "upload", "image/webp", nil, KindImage},
		{"text by mime with params", "upload", "text/plain; charset=utf-8", nil, KindText},
		{"json by sniffing", "blob", "", []byte(`{"name":"x"}`), KindJSON},
		{"png by sniffing", "blob", "application/octet-stream", []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), KindImage},
		{"unknown", "data.csv", "text/csv", nil, KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.file, tt.contentType, tt.data))
		})
	}
}

func TestText_DropsInvalidUTF8(t *testing.T) {
	got, err := Text{}.Extract([]byte("caf\xc3\xa9 \xff\xfeok"))
	require.NoError(t, err)
	assert.Equal(t, "café ok", got)
}

func TestJSON_PrettyPrintsAndRoundTrips(t *testing.T) {
	in := []byte(`{"name":"Jane","skills":["go","sql"],"years":7,"nested":{"b":true,"a":null}}`)

	got, err := JSON{}.Extract(in)
	require.NoError(t, err)
	assert.Contains(t, got, "\n  \"name\": \"Jane\"")

	var want, back any
	require.NoError(t, json.Unmarshal(in, &want))
	require.NoError(t, json.Unmarshal([]byte(got), &back))
	assert.Equal(t, want, back)
}

func TestJSON_KeepsKeyOrder(t *testing.T) {
	got, err := JSON{}.Extract([]byte(`{"z":1,"a":2}`))
	require.NoError(t, err)
	assert.Less(t, strings.Index(got, `"z"`), strings.Index(got, `"a"`))
}

func TestJSON_Malformed(t *testing.T) {
	_, err := JSON{}.Extract([]byte(`{"name": `))
	assert.Error(t, err)

	_, err = JSON{}.Extract(nil)
	assert.Error(t, err)
}

func TestDOCX_ExtractsTextAndCleansUp(t *testing.T) {
	dir := t.TempDir()
	data := buildDocx(t, map[string]string{
		"[Content_Types].xml": contentTypesXML,
		"word/document.xml":   documentXML,
		"word/header1.xml":    `<w:hdr xmlns:w="w"><w:p><w:r><w:t>Header</w:t></w:r></w:p></w:hdr>`,
		"word/footer1.xml":    `<w:ftr xmlns:w="w"><w:p><w:r><w:t>Footer</w:t></w:r></w:p></w:ftr>`,
	})

	got, err := DOCX{TempDir: dir}.Extract(data)
	require.NoError(t, err)
	for _, want := range []string{"Header", "Jane Doe", "Skills:", "Go, SQL", "line one", "line two", "Footer"} {
		assert.Contains(t, got, want)
	}
	assert.Less(t, strings.Index(got, "Jane Doe"), strings.Index(got, "line two"))
	assert.NotContains(t, got, "\n\n")
	assert.Equal(t, strings.TrimSpace(got), got)
	assertDirEmpty(t, dir)
}

func TestDOCX_CleansUpOnFailure(t *testing.T) {
	dir := t.TempDir()

	_, err := DOCX{TempDir: dir}.Extract([]byte("definitely not a zip archive"))
	assert.Error(t, err)
	assertDirEmpty(t, dir)

	DOCX{TempDir: dir}.Extract(buildDocx(t, map[string]string{"word/document.xml": "<w:document><w:t>broken"}))
	assertDirEmpty(t, dir)
}

func TestTidyLines(t *testing.T) {
	assert.Equal(t, "a\nb c", tidyLines("\n  a  \n\n\t\n b c\n"))
}

func TestDOCX_TempDirMissing(t *testing.T) {
	_, err := DOCX{TempDir: filepath.Join(t.TempDir(), "missing")}.Extract([]byte("x"))
	assert.ErrorContains(t, err, "failed to create temp file")
}

func TestPDF_JoinsPagesAndSkipsEmpty(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "resume.pdf"))
	require.NoError(t, err)

	got, err := PDF{}.Extract(data)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nGo developer", got)
}

func TestPDF_Malformed(t *testing.T) {
	got, err := PDF{}.Extract([]byte("%PDF-1.4 garbage without xref"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "PDF reader failed")
	assert.Empty(t, got)
}

func TestService_Run(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(Options{TempDir: dir})

	t.Run("text", func(t *testing.T) {
		res := svc.Run(types.UploadedFile{Name: "notes.txt", Data: []byte("hello")})
		assert.True(t, res.OK)
		assert.Equal(t, "hello", res.Text)
		assert.Equal(t, "text", res.Kind)
		assert.Empty(t, res.Note)
	})

	t.Run("image gets an info note", func(t *testing.T) {
		res := svc.Run(types.UploadedFile{Name: "me.png", ContentType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}})
		assert.True(t, res.OK)
		assert.Empty(t, res.Text)
		assert.Equal(t, types.NoteInfo, res.Level)
		assert.Contains(t, res.Note, "OCR")
	})

	t.Run("malformed json degrades to an error note", func(t *testing.T) {
		res := svc.Run(types.UploadedFile{Name: "data.json", Data: []byte("{oops")})
		assert.False(t, res.OK)
		assert.Empty(t, res.Text)
		assert.Equal(t, types.NoteError, res.Level)
		assert.True(t, strings.HasPrefix(res.Note, "Error while reading file: "))
	})

	t.Run("broken pdf degrades to a warning", func(t *testing.T) {
		res := svc.Run(types.UploadedFile{Name: "cv.pdf", Data: []byte("not a pdf")})
		assert.False(t, res.OK)
		assert.Empty(t, res.Text)
		assert.Equal(t, types.NoteWarning, res.Level)
		assert.Contains(t, res.Note, "PDF reader failed")
	})

	t.Run("broken docx leaves no temp file", func(t *testing.T) {
		res := svc.Run(types.UploadedFile{Name: "cv.docx", Data: []byte("nope")})
		assert.False(t, res.OK)
		assertDirEmpty(t, dir)
	})

	t.Run("unknown falls back to utf8", func(t *testing.T) {
		res := svc.Run(types.UploadedFile{Name: "list.csv", ContentType: "text/csv", Data: []byte("a,b\xff")})
		assert.True(t, res.OK)
		assert.Equal(t, "unknown", res.Kind)
		assert.Equal(t, "a,b", res.Text)
	})
}

func TestService_RunTruncates(t *testing.T) {
	svc := NewService(Options{MaxChars: 5})

	res := svc.Run(types.UploadedFile{Name: "notes.txt", Data: []byte("héllo world")})
	assert.True(t, res.OK)
	assert.Equal(t, "héllo"+truncatedSuffix, res.Text)
	assert.Equal(t, types.NoteWarning, res.Level)

	res = svc.Run(types.UploadedFile{Name: "notes.txt", Data: []byte("short")})
	assert.Equal(t, "short", res.Text)
	assert.Empty(t, res.Note)
}

type panicky struct{}

func (panicky) Extract([]byte) (string, error) { panic("boom") }

func TestService_RunRecoversPanics(t *testing.T) {
	svc := NewService(Options{})
	svc.extractors[KindText] = panicky{}

	res := svc.Run(types.UploadedFile{Name: "notes.txt", Data: []byte("x")})
	assert.False(t, res.OK)
	assert.Empty(t, res.Text)
	assert.Contains(t, res.Note, "boom")
}
