package api

import "html/template"

// Message is one inline notice rendered above the form.
type Message struct {
	Level string // success, info, warning, error
	Text  string
}

// PageData feeds the single page template.
type PageData struct {
	Accept    string
	Prompt    string
	Messages  []Message
	RawOutput string
	Download  bool
	Files     []string
	RequestID string
}

const pageName = "index"

var pageTemplate = template.Must(template.New(pageName).Parse(indexHTML))

// indexHTML is the embedded web interface served at /.
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>AI Website Creator</title>
<style>
  *, *::before, *::after { box-sizing: border-box; }
  body {
    font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Inter, Roboto, Helvetica, Arial, sans-serif;
    background: #fafbfc;
    color: #1a2332;
    max-width: 760px;
    margin: 0 auto;
    padding: 3rem 1.25rem 2rem;
  }
  h1 { font-size: 1.6rem; margin-bottom: 1.5rem; }
  form { display: flex; flex-direction: column; gap: 1rem; }
  label { font-weight: 600; }
  textarea { width: 100%; font: inherit; padding: 0.75rem; border: 1px solid #e8ecf0; border-radius: 8px; }
  button { align-self: flex-start; background: #3b82f6; color: #fff; border: 0; border-radius: 8px; padding: 0.6rem 1.4rem; font-size: 1rem; cursor: pointer; }
  button:hover { background: #2563eb; }
  .msg { padding: 0.75rem 1rem; border-radius: 8px; margin-bottom: 0.75rem; }
  .msg-success { background: #ecfdf5; color: #065f46; }
  .msg-info { background: #eff6ff; color: #1e40af; }
  .msg-warning { background: #fffbeb; color: #92400e; }
  .msg-error { background: #fef2f2; color: #991b1b; }
  .download { display: inline-block; margin: 1rem 0; font-weight: 600; color: #2563eb; }
  .raw { font-family: ui-monospace, SFMono-Regular, Menlo, monospace; font-size: 0.85rem; }
  .files a { margin-right: 1rem; }
</style>
</head>
<body>
<h1>AI Automation Website</h1>
{{range .Messages}}<div class="msg msg-{{.Level}}">{{.Text}}</div>
{{end}}
{{if .RawOutput}}<label for="raw">AI Raw Output</label>
<textarea id="raw" class="raw" rows="16" readonly>{{.RawOutput}}</textarea>
{{end}}
{{if .Download}}<a class="download" href="/download">Click here to download website.zip</a>
<div class="files">{{range .Files}}<a href="/files/{{.}}" target="_blank">{{.}}</a>{{end}}</div>
{{end}}
<form method="post" action="/generate" enctype="multipart/form-data">
  <label for="file">Upload File</label>
  <input id="file" type="file" name="file" accept="{{.Accept}}">
  <label for="prompt">Write your prompt</label>
  <textarea id="prompt" name="prompt" rows="7">{{.Prompt}}</textarea>
  <button type="submit">Generate</button>
</form>
{{if .RequestID}}<p><small>Request {{.RequestID}}</small></p>{{end}}
</body>
</html>
`
