package controllers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-checkin/models"
	"hotel-checkin/services"
	"hotel-checkin/utils"
)

// largest ID photo accepted from the kiosk camera
const maxFrameBytes = 10 << 20

// largest signature request body; the rendered image travels base64-encoded
const maxSignatureBodyBytes = 4 << 20

type WizardController struct {
	Wizard  *services.WizardService
	Capture *services.IDCaptureService
}

func NewWizardController(wizard *services.WizardService, capture *services.IDCaptureService) *WizardController {
	return &WizardController{Wizard: wizard, Capture: capture}
}

// dispatch runs a and writes the resulting state. Rejected actions still
// carry the unchanged state so the screen can redraw.
func (c *WizardController) dispatch(ctx *gin.Context, a services.Action) {
	state, err := c.Wizard.Dispatch(ctx.Request.Context(), a)
	if err != nil {
		utils.JSONErrorData(ctx, statusFor(err), err.Error(), state)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, "", state)
}

// GET /api/wizard
func (c *WizardController) GetState(ctx *gin.Context) {
	utils.JSONSuccess(ctx, http.StatusOK, "", c.Wizard.State())
}

func (c *WizardController) Start(ctx *gin.Context)         { c.dispatch(ctx, services.Start()) }
func (c *WizardController) SkipIDCapture(ctx *gin.Context) { c.dispatch(ctx, services.SkipIDCapture()) }
func (c *WizardController) Next(ctx *gin.Context)          { c.dispatch(ctx, services.Next()) }
func (c *WizardController) Back(ctx *gin.Context)          { c.dispatch(ctx, services.Back()) }
func (c *WizardController) Reset(ctx *gin.Context)         { c.dispatch(ctx, services.Reset()) }
func (c *WizardController) OpenHistory(ctx *gin.Context)   { c.dispatch(ctx, services.OpenHistory()) }
func (c *WizardController) CloseHistory(ctx *gin.Context)  { c.dispatch(ctx, services.CloseHistory()) }
func (c *WizardController) SwitchCamera(ctx *gin.Context)  { c.dispatch(ctx, services.SwitchCamera()) }

type updateRecordRequest struct {
	models.GuestPatch
	EmailParts *services.EmailParts `json:"emailParts,omitempty"`
	PhoneParts *services.PhoneParts `json:"phoneParts,omitempty"`
}

// PATCH /api/wizard/record
func (c *WizardController) UpdateRecord(ctx *gin.Context) {
	var req updateRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	c.dispatch(ctx, services.UpdateFields(req.GuestPatch, req.EmailParts, req.PhoneParts))
}

// POST /api/wizard/id-capture
//
// Multipart form: "frame" (the captured photo) or "camera_error" (the code
// the kiosk camera failed with), optional "facing" and "generation".
func (c *WizardController) CaptureID(ctx *gin.Context) {
	state := c.Wizard.State()
	if state.Step != models.StepIDCapture {
		utils.JSONErrorData(ctx, http.StatusConflict, services.ErrStepNotAllowed.Error(), state)
		return
	}

	generation := state.CaptureGeneration
	if raw := strings.TrimSpace(ctx.PostForm("generation")); raw != "" {
		g, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			utils.JSONError(ctx, http.StatusBadRequest, "invalid generation")
			return
		}
		generation = g
	}

	facing := state.Facing
	if f := models.Facing(ctx.PostForm("facing")); f == models.FacingFront || f == models.FacingRear {
		facing = f
	}

	var frame []byte
	if fh, err := ctx.FormFile("frame"); err == nil {
		if fh.Size > maxFrameBytes {
			utils.JSONError(ctx, http.StatusRequestEntityTooLarge, "frame too large")
			return
		}
		f, err := fh.Open()
		if err != nil {
			utils.JSONError(ctx, http.StatusBadRequest, "cannot read frame")
			return
		}
		frame, err = io.ReadAll(io.LimitReader(f, maxFrameBytes))
		f.Close()
		if err != nil {
			utils.JSONError(ctx, http.StatusBadRequest, "cannot read frame")
			return
		}
	}

	cam := services.NewUploadCamera(frame, ctx.PostForm("camera_error"))
	res, err := c.Capture.Process(ctx.Request.Context(), cam, facing)
	if err != nil {
		log.Printf("⚠️ CaptureID: %v", err)
		c.dispatch(ctx, services.CaptureFailed(err, generation))
		return
	}
	c.dispatch(ctx, services.CaptureCompleted(res, generation))
}

type signatureRequest struct {
	Strokes []services.Stroke `json:"strokes"`
	Image   string            `json:"image,omitempty"`
}

// POST /api/wizard/signature
func (c *WizardController) Sign(ctx *gin.Context) {
	var req signatureRequest
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxSignatureBodyBytes)
	if err := ctx.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.JSONError(ctx, http.StatusRequestEntityTooLarge, "signature too large")
			return
		}
		utils.JSONError(ctx, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	c.dispatch(ctx, services.CompleteSignature(req.Strokes, req.Image))
}
