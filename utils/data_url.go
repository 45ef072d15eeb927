package utils

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var ErrNotImage = errors.New("payload is not an image")

// EncodeDataURL renders b as data:<mime>;base64,<payload>. An empty mime is
// sniffed from the bytes.
func EncodeDataURL(mime string, b []byte) string {
	if mime == "" {
		mime = http.DetectContentType(b)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(b)
}

// DecodeDataURL accepts either a data URI like "data:image/png;base64,...."
// or a raw base64 payload, and returns the mime type and bytes. Raw payloads
// have their mime sniffed.
func DecodeDataURL(s string) (string, []byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil, fmt.Errorf("empty base64 string")
	}

	mime := ""
	if strings.HasPrefix(s, "data:") {
		// format: data:<mime>;base64,<payload>
		parts := strings.SplitN(s, ";base64,", 2)
		if len(parts) == 2 {
			mime = strings.TrimPrefix(parts[0], "data:")
			s = parts[1]
		} else if idx := strings.Index(s, ","); idx != -1 {
			s = s[idx+1:]
		}
	}

	// try StdEncoding then URL encoding
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		data, err = base64.URLEncoding.DecodeString(s)
		if err != nil {
			return "", nil, fmt.Errorf("base64 decode failed: %v", err)
		}
	}

	if mime == "" || mime == "image/jpg" {
		mime = http.DetectContentType(data)
	}
	return mime, data, nil
}

// DecodeImageDataURL is DecodeDataURL restricted to image payloads.
func DecodeImageDataURL(s string) (string, []byte, error) {
	mime, data, err := DecodeDataURL(s)
	if err != nil {
		return "", nil, err
	}
	if !strings.HasPrefix(mime, "image/") {
		return "", nil, fmt.Errorf("%w: %s", ErrNotImage, mime)
	}
	return mime, data, nil
}
