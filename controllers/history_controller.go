package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-checkin/services"
	"hotel-checkin/utils"
)

// HistoryController is the staff side of the kiosk: stored registrations,
// their receipts and exports.
type HistoryController struct {
	Store       *services.RecordStore
	Wizard      *services.WizardService
	Receipts    *services.ReceiptService
	Exports     *services.ExportService
	DefaultLang string
}

func NewHistoryController(
	store *services.RecordStore,
	wizard *services.WizardService,
	receipts *services.ReceiptService,
	exports *services.ExportService,
	defaultLang string,
) *HistoryController {
	return &HistoryController{
		Store:       store,
		Wizard:      wizard,
		Receipts:    receipts,
		Exports:     exports,
		DefaultLang: defaultLang,
	}
}

// GET /api/history?q=
func (c *HistoryController) List(ctx *gin.Context) {
	records := c.Store.Search(ctx.Query("q"))
	utils.JSONSuccess(ctx, http.StatusOK, "", gin.H{
		"records": records,
		"total":   c.Store.Len(),
	})
}

// GET /api/history/:id
func (c *HistoryController) Get(ctx *gin.Context) {
	rec, err := c.Store.Get(ctx.Param("id"))
	if err != nil {
		utils.JSONError(ctx, statusFor(err), err.Error())
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, "", rec)
}

// POST /api/history/:id/edit re-enters the wizard at registration with the
// stored record loaded.
func (c *HistoryController) Edit(ctx *gin.Context) {
	state, err := c.Wizard.Dispatch(ctx.Request.Context(), services.EditRecord(ctx.Param("id")))
	if err != nil {
		utils.JSONErrorData(ctx, statusFor(err), err.Error(), state)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, "", state)
}

// DELETE /api/history/:id?confirm=true
func (c *HistoryController) Delete(ctx *gin.Context) {
	if ok, _ := strconv.ParseBool(ctx.Query("confirm")); !ok {
		utils.JSONError(ctx, http.StatusConflict, "deletion must be confirmed")
		return
	}

	id := ctx.Param("id")
	found, err := c.Store.Delete(ctx.Request.Context(), id)
	if !found {
		utils.JSONError(ctx, http.StatusNotFound, services.ErrRecordNotFound.Error())
		return
	}
	if err != nil {
		if errors.Is(err, services.ErrPersistFailed) {
			utils.JSONSuccess(ctx, http.StatusOK, "deleted, not persisted", gin.H{"id": id, "storageWarning": true})
			return
		}
		utils.JSONError(ctx, http.StatusInternalServerError, err.Error())
		return
	}
	log.Printf("✅ history record %s deleted", id)
	utils.JSONSuccess(ctx, http.StatusOK, "deleted", gin.H{"id": id, "storageWarning": false})
}

// GET /api/history/export?from=&to=&format=csv|xlsx
func (c *HistoryController) Export(ctx *gin.Context) {
	r, err := services.ParseExportRange(ctx.Query("from"), ctx.Query("to"), c.Exports.Location)
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, err.Error())
		return
	}
	format := ctx.DefaultQuery("format", services.FormatCSV)
	if format != services.FormatCSV && format != services.FormatXLSX {
		utils.JSONError(ctx, http.StatusBadRequest, fmt.Sprintf("unsupported format %q", format))
		return
	}

	out, err := c.Exports.Build(format, r)
	if err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, err.Error())
		return
	}
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, out.Filename))
	ctx.Data(http.StatusOK, out.ContentType, out.Body)
}

// GET /api/history/:id/receipt
func (c *HistoryController) Receipt(ctx *gin.Context) {
	view, err := c.Receipts.Build(ctx.Param("id"), requestLang(ctx, c.DefaultLang))
	if err != nil {
		utils.JSONError(ctx, statusFor(err), err.Error())
		return
	}
	html, err := c.Receipts.RenderHTML(view)
	if err != nil {
		log.Printf("⚠️ render receipt %s: %v", view.ID, err)
		utils.JSONError(ctx, http.StatusInternalServerError, "cannot render receipt")
		return
	}
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

// GET /api/history/:id/share
func (c *HistoryController) Share(ctx *gin.Context) {
	rec, err := c.Store.Get(ctx.Param("id"))
	if err != nil {
		utils.JSONError(ctx, statusFor(err), err.Error())
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, "", c.Receipts.Links(rec, requestLang(ctx, c.DefaultLang)))
}

// GET /api/history/:id/qr.png?size=
func (c *HistoryController) QRCode(ctx *gin.Context) {
	rec, err := c.Store.Get(ctx.Param("id"))
	if err != nil {
		utils.JSONError(ctx, statusFor(err), err.Error())
		return
	}
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "256"))
	if size < 64 || size > 1024 {
		size = 256
	}
	png, err := c.Receipts.QRCode(rec, requestLang(ctx, c.DefaultLang), size)
	if err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, err.Error())
		return
	}
	ctx.Data(http.StatusOK, "image/png", png)
}
