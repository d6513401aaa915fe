package utils

import (
	"path/filepath"
	"strings"
)

// UploadExtensions are the file types offered by the upload control.
var UploadExtensions = []string{"docx", "png", "jpg", "jpeg", "txt", "pdf", "json"}

// AcceptAttr renders UploadExtensions for an <input type="file" accept="..."> attribute.
func AcceptAttr() string {
	exts := make([]string, len(UploadExtensions))
	for i, ext := range UploadExtensions {
		exts[i] = "." + ext
	}
	return strings.Join(exts, ",")
}

// DetermineFileType maps a file name to a human readable type.
func DetermineFileType(filename string) string {
	lowerFilename := strings.ToLower(filename)
	switch filepath.Ext(lowerFilename) {
	case ".html", ".htm":
		return "HTML"
	case ".css":
		return "CSS"
	case ".js":
		return "JavaScript"
	case ".json":
		return "JSON"
	case ".txt":
		return "Text"
	case ".pdf":
		return "PDF"
	case ".docx":
		return "DOCX"
	case ".zip":
		return "Archive"
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
		return "Image"
	default:
		return "Unknown"
	}
}

// ContentTypeFor returns the Content-Type used when serving a generated file.
func ContentTypeFor(filename string) string {
	switch DetermineFileType(filename) {
	case "HTML":
		return "text/html; charset=utf-8"
	case "CSS":
		return "text/css; charset=utf-8"
	case "JavaScript":
		return "text/javascript; charset=utf-8"
	case "JSON":
		return "application/json"
	case "Archive":
		return "application/zip"
	default:
		return "text/plain; charset=utf-8"
	}
}
