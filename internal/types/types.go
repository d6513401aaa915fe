package types

// GeneratedFile represents one file produced from the LLM output.
type GeneratedFile struct {
	Filename string `json:"filename"`
	Type     string `json:"type"` // e.g., "HTML", "CSS", "JavaScript"
	Content  string `json:"content"`
}

// UploadedFile is the raw upload as received from the form.
type UploadedFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// NoteLevel tells the UI how to render an extraction note.
type NoteLevel string

const (
	NoteInfo    NoteLevel = "info"
	NoteWarning NoteLevel = "warning"
	NoteError   NoteLevel = "error"
)

// ExtractedText is the best-effort text pulled out of an upload.
type ExtractedText struct {
	Kind  string    `json:"kind"`
	Text  string    `json:"text"`
	OK    bool      `json:"ok"`
	Note  string    `json:"note,omitempty"`
	Level NoteLevel `json:"level,omitempty"`
}

// PromptBundle pairs the fixed system instruction with the composed user message.
type PromptBundle struct {
	System string `json:"system"`
	User   string `json:"user"`
}

// GenerationResult is the raw text returned by the model.
type GenerationResult struct {
	Raw string `json:"raw"`
}

// OutputBundle holds the three parsed code sections and, once packaged, the archive.
type OutputBundle struct {
	HTML    string `json:"html"`
	CSS     string `json:"css"`
	JS      string `json:"js"`
	Archive []byte `json:"-"`
}
