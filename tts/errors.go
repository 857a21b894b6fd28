package tts

import "errors"

// Validation errors returned before any request is sent.
var (
	// ErrEmptyText is returned when attempting to synthesize empty text.
	ErrEmptyText = errors.New("text cannot be empty")

	// ErrEmptyVoiceID is returned when no voice is given.
	ErrEmptyVoiceID = errors.New("voice id cannot be empty")

	// ErrTooManyDictionaries is returned when a request carries more
	// pronunciation dictionary locators than the API accepts.
	ErrTooManyDictionaries = errors.New("too many pronunciation dictionary locators")
)
