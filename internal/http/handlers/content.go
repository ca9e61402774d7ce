package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/riod94/pitaya-store-sub001/internal/http/middleware"
	"github.com/riod94/pitaya-store-sub001/internal/modules/content"
	"github.com/riod94/pitaya-store-sub001/internal/modules/settings"
	"github.com/riod94/pitaya-store-sub001/internal/shared/apperr"
)

// ContentHandler serves the storefront's marketing and checkout-info
// blocks. Only active rows are exposed here; the full sets live behind
// the admin endpoints.
type ContentHandler struct {
	content  *content.Repo
	settings *settings.Repo
}

func NewContentHandler(contentRepo *content.Repo, settingsRepo *settings.Repo) *ContentHandler {
	return &ContentHandler{content: contentRepo, settings: settingsRepo}
}

func (h *ContentHandler) Banners(c *gin.Context) {
	items, err := h.content.ListBanners(c.Request.Context(), true)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

func (h *ContentHandler) Testimonials(c *gin.Context) {
	items, err := h.content.ListTestimonials(c.Request.Context(), true)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

func (h *ContentHandler) PaymentMethods(c *gin.Context) {
	items, err := h.settings.ListPaymentMethods(c.Request.Context(), true)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

func (h *ContentHandler) Couriers(c *gin.Context) {
	items, err := h.settings.ListCouriers(c.Request.Context(), true)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}
