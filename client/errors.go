package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Sentinel errors for the failures the dashboard tells apart. Everything
// else surfaces as an *APIError.
var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrNoChanges           = errors.New("nothing to update")
	ErrInvalidDiscordToken = errors.New("invalid Discord account token")
	ErrInvalidAPIKey       = errors.New("invalid OpenAI API Key")
)

// APIError is a non-2xx answer that maps to no sentinel.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func decodeError(resp *http.Response) error {
	var body errorBody
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	json.Unmarshal(raw, &body)

	switch body.Code {
	case "UNAUTHORIZED", "INVALID_TOKEN", "TOKEN_EXPIRED":
		return ErrUnauthorized
	case "NO_CHANGES":
		return ErrNoChanges
	case "INVALID_DISCORD_TOKEN":
		return ErrInvalidDiscordToken
	case "INVALID_API_KEY":
		return ErrInvalidAPIKey
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       body.Code,
		Message:    body.Message,
	}
}
