package ai

import (
	"errors"
	"fmt"
	"strings"

	"ai_site_builder/internal/types"
)

const (
	HTMLMarker = "--html--"
	CSSMarker  = "--css--"
	JSMarker   = "--js--"
)

// SiteMarkers lists the markers a response must contain, in output order.
var SiteMarkers = []string{HTMLMarker, CSSMarker, JSMarker}

// ErrMalformedOutput is matched by every *MalformedOutputError.
var ErrMalformedOutput = errors.New("invalid AI output format")

// MalformedOutputError carries the raw response so it can be shown to the user.
type MalformedOutputError struct {
	Raw     string
	Missing []string
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("%v: missing %s", ErrMalformedOutput, strings.Join(e.Missing, ", "))
}

func (e *MalformedOutputError) Is(target error) bool {
	return target == ErrMalformedOutput
}

// ParseSiteSections splits a model response into its HTML, CSS and JS bodies.
//
// Each body is the text between the first and second occurrence of its marker,
// or everything after the marker when it occurs only once. Further occurrences
// are ignored, and a marker that appears inside a code body will cut it short.
func ParseSiteSections(raw string) (types.OutputBundle, error) {
	var missing []string
	for _, m := range SiteMarkers {
		if !strings.Contains(raw, m) {
			missing = append(missing, m)
		}
	}
	if len(missing) > 0 {
		return types.OutputBundle{}, &MalformedOutputError{Raw: raw, Missing: missing}
	}

	return types.OutputBundle{
		HTML: section(raw, HTMLMarker),
		CSS:  section(raw, CSSMarker),
		JS:   section(raw, JSMarker),
	}, nil
}

func section(raw, marker string) string {
	_, after, _ := strings.Cut(raw, marker)
	body, _, _ := strings.Cut(after, marker)
	return strings.TrimSpace(body)
}
