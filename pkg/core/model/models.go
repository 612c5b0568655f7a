package model

import "strings"

// Answer describes how a member responded to the event participation survey
type Answer string

const (
	AnswerAlwaysAvailable Answer = "Always available"
	AnswerConditional     Answer = "Specific dates"
	AnswerDeclined        Answer = "Declined"
	AnswerNoResponse      Answer = "No response"
)

func (a Answer) IsValid() bool {
	return a == AnswerAlwaysAvailable || a == AnswerConditional ||
		a == AnswerDeclined || a == AnswerNoResponse
}

// Member represents a clan member eligible for siege selection
type Member struct {
	Name string

	// Progress is the raw stage-progress text as entered in the sheet (e.g. "45-2")
	Progress string

	// Power is the raw combat power text as entered in the sheet (e.g. "1.2M", "500K")
	Power string

	Answer Answer

	// SpecificDates lists the dates (2006-01-02) the member offered,
	// only meaningful when Answer is AnswerConditional
	SpecificDates []string

	// Cap is the maximum number of event days the member may be assigned.
	// Zero means unset, which defaults to the full event length.
	Cap int
}

// legacy free-text answers seen in older sheets, matched by substring
var (
	declinedMarkers    = []string{"decline", "unable", "can't", "cannot", "無理", "辞退"}
	conditionalMarkers = []string{"specific", "certain day", "some day", "日にち指定", "指定"}
	alwaysMarkers      = []string{"always", "any day", "anytime", "every day", "いつでも"}
)

// NormalizeAnswer maps raw sheet answer text onto the closed Answer enum.
// Canonical enum values pass through unchanged; legacy free-text answers are
// matched by substring. Anything unrecognized (including empty text) counts
// as no response.
func NormalizeAnswer(text string) Answer {
	trimmed := strings.TrimSpace(text)
	if a := Answer(trimmed); a.IsValid() {
		return a
	}

	lowered := strings.ToLower(trimmed)
	for _, marker := range declinedMarkers {
		if strings.Contains(lowered, marker) {
			return AnswerDeclined
		}
	}
	for _, marker := range conditionalMarkers {
		if strings.Contains(lowered, marker) {
			return AnswerConditional
		}
	}
	for _, marker := range alwaysMarkers {
		if strings.Contains(lowered, marker) {
			return AnswerAlwaysAvailable
		}
	}

	return AnswerNoResponse
}
