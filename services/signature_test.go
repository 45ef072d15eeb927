package services

import (
	"bytes"
	"image/png"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-checkin/utils"
)

func TestSignaturePadRequiresStroke(t *testing.T) {
	pad := NewSignaturePad()
	assert.False(t, pad.HasSignature())

	pad.AddStroke(Stroke{})
	assert.False(t, pad.HasSignature())

	_, err := pad.Render()
	assert.ErrorIs(t, err, ErrNoStrokes)

	pad.AddStroke(Stroke{{X: 10, Y: 10}})
	assert.True(t, pad.HasSignature())

	pad.Clear()
	assert.False(t, pad.HasSignature())
}

func TestSignaturePadRender(t *testing.T) {
	pad := NewSignaturePad()
	pad.AddStroke(Stroke{{X: 20, Y: 150}, {X: 300, Y: 150}})

	dataURL, err := pad.Render()
	require.NoError(t, err)

	mime, raw, err := utils.DecodeImageDataURL(dataURL)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, SignatureWidth, img.Bounds().Dx())
	assert.Equal(t, SignatureHeight, img.Bounds().Dy())

	r, g, b, a := img.At(100, 150).RGBA()
	assert.Equal(t, uint32(0xffff), a)
	assert.Equal(t, uint32(0x02*0x101), r)
	assert.Equal(t, uint32(0x51*0x101), g)
	assert.Equal(t, uint32(0x59*0x101), b)

	_, _, _, a = img.At(100, 50).RGBA()
	assert.Equal(t, uint32(0), a)
}

func TestSignatureFromInput(t *testing.T) {
	_, err := SignatureFromInput(nil, "data:image/png;base64,iVBORw0KGgo=")
	assert.ErrorIs(t, err, ErrNoStrokes)

	strokes := []Stroke{{{X: 1, Y: 1}, {X: 5, Y: 5}}}

	got, err := SignatureFromInput(strokes, "")
	require.NoError(t, err)
	assert.Contains(t, got, "data:image/png;base64,")

	canvas := utils.EncodeDataURL("image/png", []byte("\x89PNG\r\n\x1a\nfake"))
	got, err = SignatureFromInput(strokes, canvas)
	require.NoError(t, err)
	assert.Equal(t, canvas, got)

	_, err = SignatureFromInput(strokes, utils.EncodeDataURL("text/plain", []byte("nope")))
	assert.ErrorIs(t, err, utils.ErrNotImage)
}

func TestSignaturePadClampsPointsToSurface(t *testing.T) {
	pad := NewSignaturePad()
	pad.AddStroke(Stroke{{X: -50, Y: 150}, {X: 1e9, Y: 150}})
	pad.AddStroke(Stroke{{X: math.NaN(), Y: 1}, {X: math.Inf(1), Y: 1}})

	require.Len(t, pad.strokes, 1)
	assert.Equal(t, Stroke{{X: 0, Y: 150}, {X: SignatureWidth, Y: 150}}, pad.strokes[0])
}

func TestSignatureFromInputFarPointsFinishQuickly(t *testing.T) {
	done := make(chan error, 1)
	go func() {
		_, err := SignatureFromInput([]Stroke{{{X: 0, Y: 0}, {X: 1e9, Y: 0}}, {{X: -1e12, Y: -1e12}, {X: 1e12, Y: 1e12}}}, "")
		done <- err
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("rendering a stroke with far-away points did not finish")
	}
}

func TestSignatureFromInputSniffsRenderedImage(t *testing.T) {
	strokes := []Stroke{{{X: 1, Y: 1}, {X: 5, Y: 5}}}

	disguised := utils.EncodeDataURL("image/png", []byte("<html>not an image</html>"))
	_, err := SignatureFromInput(strokes, disguised)
	assert.ErrorIs(t, err, utils.ErrNotImage)

	// a declared type that disagrees with the bytes is corrected
	jpegAsPNG := utils.EncodeDataURL("image/png", testFrame(t, false))
	got, err := SignatureFromInput(strokes, jpegAsPNG)
	require.NoError(t, err)
	assert.Contains(t, got, "data:image/jpeg;base64,")

	huge := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, MaxSignatureBytes)...)
	_, err = SignatureFromInput(strokes, utils.EncodeDataURL("image/png", huge))
	assert.ErrorIs(t, err, ErrSignatureTooLarge)
}
