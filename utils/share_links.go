package utils

import (
	"fmt"
	"net/url"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// Receipt link query parameters.
const (
	ViewParam   = "view"
	ViewReceipt = "receipt"
	IDParam     = "id"
	LangParam   = "lang"
)

// BuildReceiptLink returns the shareable URL that opens the standalone
// receipt for id.
func BuildReceiptLink(baseURL, id, lang string) string {
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	baseURL = strings.TrimRight(baseURL, "/")

	q := url.Values{}
	q.Set(ViewParam, ViewReceipt)
	q.Set(IDParam, id)
	if lang != "" {
		q.Set(LangParam, lang)
	}
	return fmt.Sprintf("%s/?%s", baseURL, q.Encode())
}

// MailtoLink builds a pre-filled mailto: link. Spaces are encoded as %20
// since mail clients do not read "+" as a space.
func MailtoLink(to, subject, body string) string {
	q := url.Values{}
	q.Set("subject", subject)
	q.Set("body", body)
	enc := strings.ReplaceAll(q.Encode(), "+", "%20")
	return "mailto:" + url.PathEscape(strings.TrimSpace(to)) + "?" + enc
}

// WhatsAppLink builds a wa.me share link with text pre-filled.
func WhatsAppLink(text string) string {
	return "https://wa.me/?text=" + url.QueryEscape(text)
}

// QRCodePNG renders content as a PNG QR code of size×size pixels.
func QRCodePNG(content string, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("qr encode: %w", err)
	}
	return png, nil
}
