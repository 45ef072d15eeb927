package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"hotel-checkin/config"
	"hotel-checkin/utils"
)

var (
	// ErrExtractionMalformed means the reply held no usable JSON object.
	ErrExtractionMalformed = errors.New("extraction reply is malformed")
	// ErrExtractionIncomplete means the JSON object lacks a required key.
	ErrExtractionIncomplete = errors.New("extraction reply is incomplete")
)

// ExtractionPrompt is sent with every document image.
const ExtractionPrompt = "Extract the following fields from this identity document image and " +
	"return ONLY a JSON object, with no other text, using exactly these keys: " +
	`"firstName", "lastName", "nationality", "birthday". ` +
	"The birthday must be formatted as YYYY-MM-DD."

// ExtractedFields is the best-effort reading of an ID document.
type ExtractedFields struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Nationality string `json:"nationality"`
	Birthday    string `json:"birthday"`
}

// Extractor reads structured fields out of an ID photo data URL.
type Extractor interface {
	Extract(ctx context.Context, imageDataURL string) (ExtractedFields, error)
}

// HTTPExtractor posts the image to a generative model endpoint and reads
// the model text at ResultPath in the reply.
type HTTPExtractor struct {
	Endpoint   string
	APIKey     string
	Model      string
	ResultPath string
	Client     *http.Client
}

// NewHTTPExtractor returns nil when no endpoint is configured.
func NewHTTPExtractor(cfg config.Config) *HTTPExtractor {
	if !cfg.ExtractionEnabled() {
		return nil
	}
	timeout := cfg.ExtractionTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPExtractor{
		Endpoint:   strings.ReplaceAll(cfg.ExtractionEndpoint, "{model}", cfg.ExtractionModel),
		APIKey:     cfg.ExtractionAPIKey,
		Model:      cfg.ExtractionModel,
		ResultPath: cfg.ExtractionResultPath,
		Client:     &http.Client{Timeout: timeout},
	}
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type contentPart struct {
	InlineData *inlineData `json:"inline_data,omitempty"`
	Text       string      `json:"text,omitempty"`
}

type requestContent struct {
	Parts []contentPart `json:"parts"`
}

type extractionRequest struct {
	Model            string            `json:"model,omitempty"`
	Contents         []requestContent  `json:"contents"`
	GenerationConfig map[string]string `json:"generationConfig"`
}

func (e *HTTPExtractor) Extract(ctx context.Context, imageDataURL string) (ExtractedFields, error) {
	log.Println("➡️ HTTPExtractor.Extract")

	mime, raw, err := utils.DecodeImageDataURL(imageDataURL)
	if err != nil {
		return ExtractedFields{}, fmt.Errorf("image invalid: %w", err)
	}

	payload := extractionRequest{
		Model: e.Model,
		Contents: []requestContent{{Parts: []contentPart{
			{InlineData: &inlineData{MimeType: mime, Data: base64.StdEncoding.EncodeToString(raw)}},
			{Text: ExtractionPrompt},
		}}},
		GenerationConfig: map[string]string{"responseMimeType": "application/json"},
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return ExtractedFields{}, fmt.Errorf("cannot encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.Endpoint, bytes.NewReader(b))
	if err != nil {
		return ExtractedFields{}, fmt.Errorf("cannot build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if e.APIKey != "" {
		req.Header.Set("x-goog-api-key", e.APIKey)
	}

	client := e.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return ExtractedFields{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ExtractedFields{}, fmt.Errorf("HTTP error %d: %s", resp.StatusCode, truncate(string(bodyBytes), 200))
	}

	path := e.ResultPath
	if path == "" {
		path = "candidates.0.content.parts.0.text"
	}
	text := gjson.GetBytes(bodyBytes, path)
	if !text.Exists() {
		return ExtractedFields{}, fmt.Errorf("%w: nothing at %s", ErrExtractionMalformed, path)
	}

	fields, err := ParseExtraction(text.String())
	if err != nil {
		return ExtractedFields{}, err
	}
	log.Printf("⬅️ HTTPExtractor.Extract ok: %s %s", fields.FirstName, fields.LastName)
	return fields, nil
}

// ParseExtraction recovers the fields from model text that may be wrapped
// in markdown fences or prose. All four keys must be present and the
// birthday must be a recognisable date.
func ParseExtraction(text string) (ExtractedFields, error) {
	obj, ok := outermostObject(stripFences(text))
	if !ok || !gjson.Valid(obj) {
		return ExtractedFields{}, ErrExtractionMalformed
	}

	parsed := gjson.Parse(obj)
	if !parsed.IsObject() {
		return ExtractedFields{}, ErrExtractionMalformed
	}

	get := func(key string) (string, error) {
		v := parsed.Get(key)
		if !v.Exists() || v.Type == gjson.Null {
			return "", fmt.Errorf("%w: missing %s", ErrExtractionIncomplete, key)
		}
		s := strings.TrimSpace(v.String())
		if s == "" {
			return "", fmt.Errorf("%w: empty %s", ErrExtractionIncomplete, key)
		}
		return s, nil
	}

	var out ExtractedFields
	var err error
	if out.FirstName, err = get("firstName"); err != nil {
		return ExtractedFields{}, err
	}
	if out.LastName, err = get("lastName"); err != nil {
		return ExtractedFields{}, err
	}
	if out.Nationality, err = get("nationality"); err != nil {
		return ExtractedFields{}, err
	}
	birthday, err := get("birthday")
	if err != nil {
		return ExtractedFields{}, err
	}
	if out.Birthday, err = NormalizeBirthday(birthday); err != nil {
		return ExtractedFields{}, err
	}
	return out, nil
}

var birthdayLayouts = []string{
	DateLayout,
	"02/01/2006",
	"2006/01/02",
	"02-01-2006",
	"02.01.2006",
	time.RFC3339,
}

// NormalizeBirthday rewrites a date in any of the accepted layouts as
// YYYY-MM-DD.
func NormalizeBirthday(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range birthdayLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateLayout), nil
		}
	}
	return "", fmt.Errorf("%w: birthday %q", ErrExtractionMalformed, s)
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```JSON", "")
	return strings.ReplaceAll(s, "```", "")
}

func outermostObject(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
