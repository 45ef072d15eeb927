package services

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"net/http"
	"strings"

	"hotel-checkin/utils"
)

var ErrNoStrokes = errors.New("signature has no strokes")

// ErrSignatureTooLarge is returned for a kiosk-rendered image above
// MaxSignatureBytes.
var ErrSignatureTooLarge = errors.New("signature image too large")

// MaxSignatureBytes caps a kiosk-rendered signature image.
const MaxSignatureBytes = 1 << 20

// Signature surface defaults.
const (
	SignatureWidth  = 600
	SignatureHeight = 300
	strokeWidth     = 3.0
)

// strokeColor is the pen colour, #025159.
var strokeColor = color.NRGBA{R: 0x02, G: 0x51, B: 0x59, A: 0xff}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Stroke is one pen-down to pen-up path.
type Stroke []Point

// SignaturePad collects strokes and renders them to a PNG.
type SignaturePad struct {
	Width   int
	Height  int
	strokes []Stroke
}

func NewSignaturePad() *SignaturePad {
	return &SignaturePad{Width: SignatureWidth, Height: SignatureHeight}
}

// AddStroke records s with every point clamped onto the surface. Points
// that are not finite are dropped; strokes left without points are ignored.
func (p *SignaturePad) AddStroke(s Stroke) {
	w, h := p.size()
	cp := make(Stroke, 0, len(s))
	for _, pt := range s {
		if !finite(pt.X) || !finite(pt.Y) {
			continue
		}
		cp = append(cp, Point{X: clamp(pt.X, 0, float64(w)), Y: clamp(pt.Y, 0, float64(h))})
	}
	if len(cp) == 0 {
		return
	}
	p.strokes = append(p.strokes, cp)
}

func (p *SignaturePad) size() (int, int) {
	if p.Width <= 0 || p.Height <= 0 {
		return SignatureWidth, SignatureHeight
	}
	return p.Width, p.Height
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Clear drops every stroke.
func (p *SignaturePad) Clear() {
	p.strokes = nil
}

// HasSignature reports whether finishing is allowed.
func (p *SignaturePad) HasSignature() bool {
	return len(p.strokes) > 0
}

// Render rasterizes the strokes onto a transparent surface and returns a
// data:image/png;base64 URL.
func (p *SignaturePad) Render() (string, error) {
	if !p.HasSignature() {
		return "", ErrNoStrokes
	}

	w, h := p.size()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))

	for _, s := range p.strokes {
		if len(s) == 1 {
			stamp(img, s[0].X, s[0].Y)
			continue
		}
		for i := 1; i < len(s); i++ {
			line(img, s[i-1], s[i])
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode signature: %w", err)
	}
	return utils.EncodeDataURL("image/png", buf.Bytes()), nil
}

// line walks a→b in half-pixel steps with a round pen, which gives the
// round caps and joins of the kiosk canvas. The step count never exceeds
// twice the surface diagonal.
func line(img *image.NRGBA, a, b Point) {
	dx, dy := b.X-a.X, b.Y-a.Y
	size := img.Bounds().Size()
	limit := math.Ceil(math.Hypot(float64(size.X), float64(size.Y)) * 2)
	steps := int(math.Min(math.Ceil(math.Hypot(dx, dy)*2), limit))
	if steps == 0 {
		stamp(img, a.X, a.Y)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		stamp(img, a.X+dx*t, a.Y+dy*t)
	}
}

func stamp(img *image.NRGBA, cx, cy float64) {
	r := strokeWidth / 2
	bounds := img.Bounds()
	for y := int(math.Floor(cy - r)); y <= int(math.Ceil(cy+r)); y++ {
		for x := int(math.Floor(cx - r)); x <= int(math.Ceil(cx+r)); x++ {
			if !image.Pt(x, y).In(bounds) {
				continue
			}
			px, py := float64(x)+0.5, float64(y)+0.5
			if (px-cx)*(px-cx)+(py-cy)*(py-cy) <= r*r {
				img.SetNRGBA(x, y, strokeColor)
			}
		}
	}
}

// SignatureFromInput turns what the kiosk sent into the stored signature
// payload. A canvas-rendered image is accepted only alongside at least one
// stroke; otherwise the strokes are rendered here.
func SignatureFromInput(strokes []Stroke, rendered string) (string, error) {
	pad := NewSignaturePad()
	for _, s := range strokes {
		pad.AddStroke(s)
	}
	if !pad.HasSignature() {
		return "", ErrNoStrokes
	}
	if rendered != "" {
		_, data, err := utils.DecodeImageDataURL(rendered)
		if err != nil {
			return "", fmt.Errorf("signature image: %w", err)
		}
		if len(data) > MaxSignatureBytes {
			return "", ErrSignatureTooLarge
		}
		// the declared type is not trusted
		mime := http.DetectContentType(data)
		if !strings.HasPrefix(mime, "image/") {
			return "", fmt.Errorf("signature image: %w: %s", utils.ErrNotImage, mime)
		}
		return utils.EncodeDataURL(mime, data), nil
	}
	return pad.Render()
}
