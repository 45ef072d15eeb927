package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-checkin/i18n"
	"hotel-checkin/models"
	"hotel-checkin/services"
	"hotel-checkin/utils"
)

// PageController serves the kiosk screen, the standalone receipt page and
// the rules catalogue.
type PageController struct {
	Wizard      *services.WizardService
	Receipts    *services.ReceiptService
	Hotel       models.HotelProfile
	DefaultLang string
}

func NewPageController(wizard *services.WizardService, receipts *services.ReceiptService, hotel models.HotelProfile, defaultLang string) *PageController {
	return &PageController{Wizard: wizard, Receipts: receipts, Hotel: hotel, DefaultLang: defaultLang}
}

// lang resolves the language and remembers an explicit choice in a cookie.
func (c *PageController) lang(ctx *gin.Context) string {
	lang := requestLang(ctx, c.DefaultLang)
	if _, ok := i18n.Match(ctx.Query(i18n.LangParam)); ok {
		ctx.SetCookie(i18n.LangCookieName, lang, int((365 * 24 * time.Hour).Seconds()), "/", "", false, false)
	}
	return lang
}

// GET /
//
// ?view=receipt&id=... opens a shared receipt directly. An unknown id falls
// back to the wizard.
func (c *PageController) Index(ctx *gin.Context) {
	lang := c.lang(ctx)

	if ctx.Query(utils.ViewParam) == utils.ViewReceipt {
		id := ctx.Query(utils.IDParam)
		view, err := c.Receipts.Build(id, lang)
		switch {
		case err == nil:
			html, err := c.Receipts.RenderHTML(view)
			if err != nil {
				log.Printf("⚠️ render receipt %s: %v", id, err)
				ctx.String(http.StatusInternalServerError, "cannot render receipt")
				return
			}
			ctx.Data(http.StatusOK, "text/html; charset=utf-8", html)
			return
		case errors.Is(err, services.ErrRecordNotFound):
			log.Printf("⚠️ shared receipt %q not found, opening wizard", id)
		default:
			log.Printf("⚠️ shared receipt %q: %v", id, err)
		}
	}

	state := c.Wizard.State()
	receiptLink := ""
	if state.Step == models.StepConfirmation && state.Record.IsPersisted() {
		receiptLink = c.Receipts.Links(state.Record, lang).Receipt
	}

	ctx.HTML(http.StatusOK, "wizard.html", gin.H{
		"Lang":               lang,
		"Hotel":              c.Hotel,
		"Languages":          i18n.Supported(),
		"State":              state,
		"StorageWarningText": i18n.Label(lang, i18n.StorageWarning),
		"Rules":              services.Rules(lang),
		"ReceiptLink":        receiptLink,
	})
}

// GET /api/rules?lang=
func (c *PageController) Rules(ctx *gin.Context) {
	lang := requestLang(ctx, c.DefaultLang)
	utils.JSONSuccess(ctx, http.StatusOK, "", gin.H{
		"lang":      lang,
		"rules":     services.Rules(lang),
		"penalties": services.Penalties(lang, c.Hotel.Currency),
	})
}

// GET /api/labels?lang=
func (c *PageController) Labels(ctx *gin.Context) {
	lang := requestLang(ctx, c.DefaultLang)
	utils.JSONSuccess(ctx, http.StatusOK, "", gin.H{
		"lang":      lang,
		"languages": i18n.Supported(),
		"labels":    i18n.Labels(lang),
	})
}
