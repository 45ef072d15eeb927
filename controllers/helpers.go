package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-checkin/i18n"
	"hotel-checkin/services"
	"hotel-checkin/utils"
)

// requestLang resolves the display language from ?lang=, the language
// cookie, Accept-Language and finally def.
func requestLang(ctx *gin.Context, def string) string {
	cookie, _ := ctx.Cookie(i18n.LangCookieName)
	return i18n.Resolve(ctx.Query(i18n.LangParam), cookie, ctx.GetHeader("Accept-Language"), def)
}

// statusFor maps service errors onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrStepNotAllowed):
		return http.StatusConflict
	case errors.Is(err, services.ErrIncompleteRegistration),
		errors.Is(err, services.ErrNoStrokes),
		errors.Is(err, utils.ErrNotImage),
		errors.Is(err, services.ErrBadExportRange):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrSignatureTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}
