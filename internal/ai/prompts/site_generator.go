package prompts

import "ai_site_builder/internal/types"

// SiteSystemPrompt is sent as the system message of every generation.
// The --html--/--css--/--js-- markers are what ai.ParseSiteSections splits on.
const SiteSystemPrompt = `You are an expert web developer with deep knowledge of HTML, CSS, JavaScript, UI/UX design, and responsive layouts.
Your task is to generate a complete, production-quality frontend website based on the user prompt.
Follow these rules:

Always generate clean, structured, and well-commented code.

The output must include three sections:

--html--
[html code]
--html--

--css--
[css code]
--css--

--js--
[java script code]
--js--

Use modern UI/UX principles, including responsive navbar, proper spacing, fonts, and color palette.
Smooth animations and transitions.
Code should work independently in a single HTML file.
Use only frontend technologies (no backend).
Do not explain the code unless the user requests an explanation.
`

const (
	extractedContentHeader = "\n\n---\nUse the following extracted content from the uploaded file to fill the portfolio/website:\n\n"
	noTextNote             = "\n\n---\nNote: A file was uploaded but no selectable text was extracted. If this is a scanned PDF/image, consider enabling OCR or providing a text/DOCX version."
)

// ComposeSitePrompt builds the message pair for a generation request.
// uploaded reports whether the user attached a file at all.
func ComposeSitePrompt(userPrompt, extractedText string, uploaded bool) types.PromptBundle {
	final := userPrompt
	if uploaded {
		if extractedText != "" {
			final += extractedContentHeader + extractedText
		} else {
			final += noTextNote
		}
	}
	return types.PromptBundle{System: SiteSystemPrompt, User: final}
}
