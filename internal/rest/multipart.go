package rest

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"

	pkgerrors "github.com/AltairaLabs/elevenlabs-go/pkg/errors"
)

const defaultFileContentType = "application/octet-stream"

// audioContentTypes covers the upload formats the API accepts; the mime
// package only knows them when the host ships a mime.types file.
var audioContentTypes = map[string]string{
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".m4a":  "audio/mp4",
	".ogg":  "audio/ogg",
	".flac": "audio/flac",
	".webm": "audio/webm",
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// Multipart builds a multipart/form-data body in memory. Files are read
// when added, so local I/O failures surface before any request is sent.
type Multipart struct {
	op     string
	buf    bytes.Buffer
	w      *multipart.Writer
	closed bool
}

// NewMultipart starts a form for the named operation.
func NewMultipart(op string) *Multipart {
	m := &Multipart{op: op}
	m.w = multipart.NewWriter(&m.buf)
	return m
}

// AddField writes a text field.
func (m *Multipart) AddField(name, value string) error {
	if err := m.w.WriteField(name, value); err != nil {
		return pkgerrors.Encode(m.op, fmt.Errorf("failed to write field %s: %w", name, err))
	}
	return nil
}

// AddFile writes the file at path as a part named field. The part's
// filename is the base name and its content type follows the extension.
func (m *Multipart) AddFile(field, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return pkgerrors.IO(m.op, err)
	}
	defer f.Close()

	name := filepath.Base(path)
	contentType := fileContentType(name)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(field), quoteEscaper.Replace(name)))
	h.Set("Content-Type", contentType)

	part, err := m.w.CreatePart(h)
	if err != nil {
		return pkgerrors.Encode(m.op, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return pkgerrors.IO(m.op, fmt.Errorf("failed to read %s: %w", path, err))
	}
	return nil
}

// Close finishes the form and returns its content type and body.
func (m *Multipart) Close() (contentType string, body []byte, err error) {
	if !m.closed {
		if err := m.w.Close(); err != nil {
			return "", nil, pkgerrors.Encode(m.op, err)
		}
		m.closed = true
	}
	return m.w.FormDataContentType(), m.buf.Bytes(), nil
}

func fileContentType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ct, ok := audioContentTypes[ext]; ok {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return defaultFileContentType
}
