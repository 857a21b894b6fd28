package tts

import (
	"fmt"
	"strconv"
	"strings"
)

// AudioFormat describes an output_format value.
type AudioFormat struct {
	// Codec is the format family: "mp3", "pcm", "ulaw", "alaw" or "opus".
	Codec string

	// SampleRate is the audio sample rate in Hz.
	SampleRate int

	// BitRate is the bitrate in kbps for compressed codecs, zero otherwise.
	BitRate int
}

var codecInfo = map[string]struct {
	mimeType  string
	extension string
}{
	"mp3":  {"audio/mpeg", ".mp3"},
	"pcm":  {"audio/pcm", ".pcm"},
	"ulaw": {"audio/basic", ".ulaw"},
	"alaw": {"audio/x-alaw-basic", ".alaw"},
	"opus": {"audio/opus", ".opus"},
}

// ParseOutputFormat parses values such as "mp3_44100_128" or "pcm_24000".
func ParseOutputFormat(s string) (AudioFormat, error) {
	parts := strings.Split(s, "_")
	if len(parts) < 2 || len(parts) > 3 {
		return AudioFormat{}, fmt.Errorf("invalid output format %q", s)
	}
	if _, ok := codecInfo[parts[0]]; !ok {
		return AudioFormat{}, fmt.Errorf("invalid output format %q: unknown codec %s", s, parts[0])
	}

	f := AudioFormat{Codec: parts[0]}
	rate, err := strconv.Atoi(parts[1])
	if err != nil || rate <= 0 {
		return AudioFormat{}, fmt.Errorf("invalid output format %q: bad sample rate", s)
	}
	f.SampleRate = rate

	if len(parts) == 3 {
		br, err := strconv.Atoi(parts[2])
		if err != nil || br <= 0 {
			return AudioFormat{}, fmt.Errorf("invalid output format %q: bad bitrate", s)
		}
		f.BitRate = br
	}
	return f, nil
}

// String renders the output_format value.
func (f AudioFormat) String() string {
	if f.BitRate > 0 {
		return fmt.Sprintf("%s_%d_%d", f.Codec, f.SampleRate, f.BitRate)
	}
	return fmt.Sprintf("%s_%d", f.Codec, f.SampleRate)
}

// MIMEType returns the content type of audio in this format.
func (f AudioFormat) MIMEType() string {
	return codecInfo[f.Codec].mimeType
}

// Extension returns a file extension for audio in this format, with the dot.
func (f AudioFormat) Extension() string {
	return codecInfo[f.Codec].extension
}
