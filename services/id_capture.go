package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"log"
	"net/http"
	"strings"
	"sync"

	"hotel-checkin/models"
	"hotel-checkin/utils"
)

// Camera errors. All of them are recoverable: the kiosk offers a retry.
var (
	ErrCameraPermissionDenied = errors.New("camera permission denied")
	ErrCameraUnavailable      = errors.New("camera unavailable")
	ErrCameraInsecureContext  = errors.New("camera requires a secure context")
	ErrCameraBusy             = errors.New("camera is busy")
)

// camera error codes as reported by kiosk clients, including the browser
// DOMException names
var cameraErrorCodes = map[string]error{
	"permission_denied":    ErrCameraPermissionDenied,
	"notallowederror":      ErrCameraPermissionDenied,
	"securityerror":        ErrCameraPermissionDenied,
	"unavailable":          ErrCameraUnavailable,
	"notfounderror":        ErrCameraUnavailable,
	"overconstrainederror": ErrCameraUnavailable,
	"insecure_context":     ErrCameraInsecureContext,
	"busy":                 ErrCameraBusy,
	"notreadableerror":     ErrCameraBusy,
	"aborterror":           ErrCameraBusy,
}

// CameraErrorFromCode maps a reported code to one of the camera errors.
// Unknown codes are treated as an unavailable camera.
func CameraErrorFromCode(code string) error {
	if err, ok := cameraErrorCodes[strings.ToLower(strings.TrimSpace(code))]; ok {
		return err
	}
	return fmt.Errorf("%w: %s", ErrCameraUnavailable, code)
}

// CameraErrorCode is the stable code sent back to the kiosk for err.
func CameraErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrCameraPermissionDenied):
		return "permission_denied"
	case errors.Is(err, ErrCameraInsecureContext):
		return "insecure_context"
	case errors.Is(err, ErrCameraBusy):
		return "busy"
	case errors.Is(err, ErrCameraUnavailable):
		return "unavailable"
	}
	return ""
}

// IsCameraError reports whether err is one of the camera errors.
func IsCameraError(err error) bool {
	return CameraErrorCode(err) != ""
}

// Constraints describe one attempt at opening a camera.
type Constraints struct {
	Facing      models.Facing `json:"facing,omitempty"`
	IdealWidth  int           `json:"idealWidth,omitempty"`
	IdealHeight int           `json:"idealHeight,omitempty"`
	// AnyCamera drops every preference.
	AnyCamera bool `json:"anyCamera,omitempty"`
}

// constraintAttempts goes from the preferred camera at 1280x720 down to any
// camera at all; some tablets reject resolution hints.
func constraintAttempts(f models.Facing) []Constraints {
	return []Constraints{
		{Facing: f, IdealWidth: 1280, IdealHeight: 720},
		{Facing: f},
		{AnyCamera: true},
	}
}

type Camera interface {
	Open(ctx context.Context, c Constraints) (Device, error)
}

// Device is an open camera. Close releases the hardware.
type Device interface {
	Capture(ctx context.Context) ([]byte, error)
	Close() error
}

// CaptureSession owns at most one open Device.
type CaptureSession struct {
	mu     sync.Mutex
	camera Camera
	device Device
	facing models.Facing
}

func NewCaptureSession(cam Camera) *CaptureSession {
	return &CaptureSession{camera: cam, facing: models.FacingRear}
}

// Start releases any open device and opens the camera facing f, trying
// looser constraints until one works. The last error is returned when all
// attempts fail.
func (s *CaptureSession) Start(ctx context.Context, f models.Facing) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.releaseLocked()
	if f == "" {
		f = s.facing
	}

	var lastErr error
	for _, c := range constraintAttempts(f) {
		dev, err := s.camera.Open(ctx, c)
		if err == nil && dev != nil {
			s.device = dev
			s.facing = f
			return nil
		}
		if err == nil {
			err = ErrCameraUnavailable
		}
		log.Printf("⚠️ camera attempt %+v failed: %v", c, err)
		lastErr = err

		// a denied permission does not get better with looser constraints
		if errors.Is(err, ErrCameraPermissionDenied) || errors.Is(err, ErrCameraInsecureContext) {
			break
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	return lastErr
}

// Switch flips between the front and rear cameras.
func (s *CaptureSession) Switch(ctx context.Context) error {
	s.mu.Lock()
	next := s.facing.Opposite()
	s.mu.Unlock()
	return s.Start(ctx, next)
}

// Capture grabs one frame as a JPEG data URL. The device is closed whether
// or not the capture worked.
func (s *CaptureSession) Capture(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.device == nil {
		return "", ErrCameraUnavailable
	}
	defer s.releaseLocked()

	frame, err := s.device.Capture(ctx)
	if err != nil {
		return "", err
	}
	return encodeJPEGDataURL(frame)
}

// Stop releases the device, if any.
func (s *CaptureSession) Stop() {
	s.mu.Lock()
	s.releaseLocked()
	s.mu.Unlock()
}

func (s *CaptureSession) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.device != nil
}

func (s *CaptureSession) Facing() models.Facing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.facing
}

func (s *CaptureSession) releaseLocked() {
	if s.device == nil {
		return
	}
	if err := s.device.Close(); err != nil {
		log.Printf("⚠️ camera close: %v", err)
	}
	s.device = nil
}

// encodeJPEGDataURL passes JPEG frames through and re-encodes anything else
// at quality 80.
func encodeJPEGDataURL(frame []byte) (string, error) {
	if len(frame) == 0 {
		return "", ErrCameraUnavailable
	}
	if http.DetectContentType(frame) == "image/jpeg" {
		return utils.EncodeDataURL("image/jpeg", frame), nil
	}
	img, _, err := image.Decode(bytes.NewReader(frame))
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrNotImage, err)
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 80}); err != nil {
		return "", fmt.Errorf("encode frame: %w", err)
	}
	return utils.EncodeDataURL("image/jpeg", buf.Bytes()), nil
}

// UploadCamera is the Camera of a kiosk that captures on its side and
// uploads either one frame or the error it got.
type UploadCamera struct {
	Frame []byte
	Err   error

	mu       sync.Mutex
	Attempts []Constraints
	opened   []*uploadDevice
}

// NewUploadCamera builds an UploadCamera from a multipart frame and/or a
// reported camera error code.
func NewUploadCamera(frame []byte, errorCode string) *UploadCamera {
	cam := &UploadCamera{Frame: frame}
	if strings.TrimSpace(errorCode) != "" {
		cam.Err = CameraErrorFromCode(errorCode)
	}
	return cam
}

func (u *UploadCamera) Open(_ context.Context, c Constraints) (Device, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.Attempts = append(u.Attempts, c)

	if u.Err != nil {
		return nil, u.Err
	}
	if len(u.Frame) == 0 {
		return nil, ErrCameraUnavailable
	}
	dev := &uploadDevice{frame: u.Frame}
	u.opened = append(u.opened, dev)
	return dev, nil
}

// OpenDevices counts devices not yet closed.
func (u *UploadCamera) OpenDevices() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	n := 0
	for _, d := range u.opened {
		if !d.isClosed() {
			n++
		}
	}
	return n
}

type uploadDevice struct {
	mu     sync.Mutex
	frame  []byte
	closed bool
}

func (d *uploadDevice) Capture(context.Context) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil, ErrCameraBusy
	}
	return d.frame, nil
}

func (d *uploadDevice) Close() error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	return nil
}

func (d *uploadDevice) isClosed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}

// CaptureResult is what the ID-capture step hands to the wizard.
type CaptureResult struct {
	Image     string          `json:"image"`
	Fields    ExtractedFields `json:"fields"`
	Extracted bool            `json:"extracted"`
}

// IDCaptureService runs one capture: open the camera, grab a frame, release
// the camera, then try to read the document fields.
type IDCaptureService struct {
	Extractor Extractor
}

func NewIDCaptureService(ex Extractor) *IDCaptureService {
	return &IDCaptureService{Extractor: ex}
}

// Process returns a camera error untouched so the step can offer a retry.
// Extraction problems never fail the capture; the image is attached alone.
func (s *IDCaptureService) Process(ctx context.Context, cam Camera, facing models.Facing) (CaptureResult, error) {
	log.Printf("➡️ IDCaptureService.Process facing=%s", facing)

	session := NewCaptureSession(cam)
	defer session.Stop()

	if err := session.Start(ctx, facing); err != nil {
		log.Printf("⬅️ IDCaptureService.Process camera error: %v", err)
		return CaptureResult{}, err
	}
	img, err := session.Capture(ctx)
	if err != nil {
		log.Printf("⬅️ IDCaptureService.Process capture error: %v", err)
		return CaptureResult{}, err
	}

	res := CaptureResult{Image: img}
	if s.Extractor == nil {
		log.Println("ℹ️ extraction not configured, attaching image only")
		return res, nil
	}

	fields, err := s.Extractor.Extract(ctx, img)
	if err != nil {
		log.Printf("⚠️ extraction failed, attaching image only: %v", err)
		return res, nil
	}
	res.Fields = fields
	res.Extracted = true
	log.Printf("⬅️ IDCaptureService.Process extracted %s %s", fields.FirstName, fields.LastName)
	return res, nil
}
