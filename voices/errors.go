package voices

import "errors"

var (
	// ErrEmptyVoiceID is returned when an operation needs a voice id and none was given.
	ErrEmptyVoiceID = errors.New("voice id cannot be empty")

	// ErrEmptyName is returned when adding or editing a voice without a name.
	ErrEmptyName = errors.New("voice name cannot be empty")

	// ErrNoFiles is returned by AddVoice when no sample files are given.
	ErrNoFiles = errors.New("at least one sample file is required")
)
