package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"unicode/utf8"

	"ai_site_builder/internal/ai"
	"ai_site_builder/internal/ai/prompts"
	"ai_site_builder/internal/packager"
	"ai_site_builder/internal/types"
	"ai_site_builder/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// multipartOverhead leaves room for the prompt field and multipart framing.
const multipartOverhead = 1 << 20

// SiteGenerator produces the raw model response for a prompt bundle.
type SiteGenerator interface {
	GenerateSite(ctx context.Context, bundle types.PromptBundle) (types.GenerationResult, error)
}

// TextExtractor turns an upload into prompt text. It must not fail.
type TextExtractor interface {
	Run(file types.UploadedFile) types.ExtractedText
}

// APIHandler holds dependencies for the UI endpoints.
type APIHandler struct {
	aiGenerator    SiteGenerator
	extractor      TextExtractor
	packager       *packager.Packager
	maxUploadBytes int64
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(aiGen SiteGenerator, extractor TextExtractor, pkg *packager.Packager, maxUploadBytes int64) *APIHandler {
	return &APIHandler{
		aiGenerator:    aiGen,
		extractor:      extractor,
		packager:       pkg,
		maxUploadBytes: maxUploadBytes,
	}
}

func (h *APIHandler) render(c *gin.Context, status int, data PageData) {
	data.Accept = utils.AcceptAttr()
	c.HTML(status, pageName, data)
}

// GET /
func (h *APIHandler) Index(c *gin.Context) {
	h.render(c, http.StatusOK, PageData{})
}

// POST /generate
func (h *APIHandler) GenerateSite(c *gin.Context) {
	requestID := uuid.New().String()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+multipartOverhead)

	prompt := c.PostForm("prompt")
	page := PageData{Prompt: prompt, RequestID: requestID}

	upload, err := h.readUpload(c)
	if err != nil {
		log.Printf("Rejected upload for request %s: %v", requestID, err)
		page.Messages = append(page.Messages, Message{Level: "error", Text: err.Error()})
		h.render(c, http.StatusBadRequest, page)
		return
	}

	var extracted types.ExtractedText
	if upload != nil {
		page.Messages = append(page.Messages, Message{Level: "success", Text: "Uploaded: " + upload.Name})
		extracted = h.extractor.Run(*upload)
		if extracted.Note != "" {
			page.Messages = append(page.Messages, Message{Level: string(extracted.Level), Text: extracted.Note})
		}
	}

	bundle := prompts.ComposeSitePrompt(prompt, extracted.Text, upload != nil)
	log.Printf("Generating site for request %s (upload: %t, extracted: %d chars)", requestID, upload != nil, utf8.RuneCountInString(extracted.Text))

	result, err := h.aiGenerator.GenerateSite(c.Request.Context(), bundle)
	if err != nil {
		log.Printf("ERROR: generation failed for request %s: %v", requestID, err)
		page.Messages = append(page.Messages, Message{Level: "error", Text: "Generation failed: " + err.Error()})
		h.render(c, http.StatusBadGateway, page)
		return
	}

	site, err := ai.ParseSiteSections(result.Raw)
	if err != nil {
		var malformed *ai.MalformedOutputError
		if errors.As(err, &malformed) {
			log.Printf("WARN: malformed model output for request %s: %v", requestID, err)
			page.Messages = append(page.Messages, Message{Level: "error", Text: "Invalid AI output format."})
			page.RawOutput = malformed.Raw
			h.render(c, http.StatusUnprocessableEntity, page)
			return
		}
		page.Messages = append(page.Messages, Message{Level: "error", Text: err.Error()})
		h.render(c, http.StatusInternalServerError, page)
		return
	}

	if _, err := h.packager.Package(site); err != nil {
		log.Printf("ERROR: packaging failed for request %s: %v", requestID, err)
		page.Messages = append(page.Messages, Message{Level: "error", Text: "Failed to save website: " + err.Error()})
		h.render(c, http.StatusInternalServerError, page)
		return
	}

	log.Printf("Site generation successful for request %s", requestID)
	page.Messages = append(page.Messages, Message{Level: "success", Text: "Website generated successfully."})
	page.Download = true
	page.Files = packager.SiteFiles
	h.render(c, http.StatusOK, page)
}

// readUpload returns nil when the form carries no file.
func (h *APIHandler) readUpload(c *gin.Context) (*types.UploadedFile, error) {
	header, err := c.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read upload: %w", err)
	}
	if header.Size > h.maxUploadBytes {
		return nil, fmt.Errorf("file %s is too large (%d bytes, limit %d)", header.Filename, header.Size, h.maxUploadBytes)
	}

	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("could not open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("could not read upload: %w", err)
	}

	return &types.UploadedFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// GET /download
func (h *APIHandler) DownloadSite(c *gin.Context) {
	path := h.packager.ArchivePath()
	if _, err := os.Stat(path); err != nil {
		h.render(c, http.StatusNotFound, PageData{
			Messages: []Message{{Level: "error", Text: "Nothing to download yet. Generate a website first."}},
		})
		return
	}
	c.FileAttachment(path, packager.DownloadName)
}

// GET /files/:name
func (h *APIHandler) PreviewFile(c *gin.Context) {
	name := c.Param("name")
	data, err := h.packager.ReadFile(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
			return
		}
		log.Printf("ERROR: reading generated file %s: %v", name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}
	c.Data(http.StatusOK, utils.ContentTypeFor(name), data)
}
