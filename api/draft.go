package api

import (
	"fmt"
	"math"
	"strings"
)

// ChatSessionDraft holds raw form input for a chat session before
// submission. Numeric fields are float64 so blank or unparsed input shows
// up as zero and fails the lower-bound checks rather than being coerced
// into something that passes.
type ChatSessionDraft struct {
	Name          string
	DiscordChatID string
	MinInterval   float64
	MaxInterval   float64
	SystemPrompt  string
	UserPrompt    string
	MaxTokens     float64
	Temperature   float64
	Model         string
}

// FieldError names the first draft field that fails validation.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate checks the draft against the chat session invariants and returns
// the first offending field, or nil when the draft is acceptable. It never
// touches the draft or anything else, so calling it repeatedly on the same
// input always gives the same answer.
//
// Fractional MaxTokens is floored before the bound check, so 1.9 counts
// as 1 and 0.9 as 0.
func (d ChatSessionDraft) Validate() *FieldError {
	required := []struct {
		field string
		value string
	}{
		{"name", d.Name},
		{"discordChatId", d.DiscordChatID},
		{"prompt_system", d.SystemPrompt},
		{"prompt_user", d.UserPrompt},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &FieldError{Field: f.field, Reason: "must not be empty"}
		}
	}

	if d.MinInterval < 1 {
		return &FieldError{Field: "min_interval", Reason: "must be at least 1"}
	}
	if d.MaxInterval < 1 {
		return &FieldError{Field: "max_interval", Reason: "must be at least 1"}
	}
	if d.MinInterval > d.MaxInterval {
		return &FieldError{Field: "min_interval", Reason: "must not exceed max_interval"}
	}
	if math.Floor(d.MaxTokens) < 1 {
		return &FieldError{Field: "max_tokens", Reason: "must be at least 1"}
	}
	if d.Temperature < 0 || d.Temperature > 1 {
		return &FieldError{Field: "temperature", Reason: "must be between 0 and 1"}
	}
	if strings.TrimSpace(d.Model) == "" {
		return &FieldError{Field: "gpt_model", Reason: "must not be empty"}
	}

	return nil
}

// IsValid reports whether the draft passes Validate.
func (d ChatSessionDraft) IsValid() bool {
	return d.Validate() == nil
}

// Payload converts a validated draft into the create body: strings are
// trimmed and the numeric fields floored to integers.
func (d ChatSessionDraft) Payload() ChatPayload {
	return ChatPayload{
		Name:          strings.TrimSpace(d.Name),
		DiscordChatID: strings.TrimSpace(d.DiscordChatID),
		MinInterval:   int(math.Floor(d.MinInterval)),
		MaxInterval:   int(math.Floor(d.MaxInterval)),
		SystemPrompt:  strings.TrimSpace(d.SystemPrompt),
		UserPrompt:    strings.TrimSpace(d.UserPrompt),
		MaxTokens:     int(math.Floor(d.MaxTokens)),
		Temperature:   d.Temperature,
		Model:         strings.TrimSpace(d.Model),
	}
}
