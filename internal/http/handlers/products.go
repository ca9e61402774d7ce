package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/riod94/pitaya-store-sub001/internal/cache"
	"github.com/riod94/pitaya-store-sub001/internal/http/middleware"
	"github.com/riod94/pitaya-store-sub001/internal/modules/catalog"
	"github.com/riod94/pitaya-store-sub001/internal/shared/apperr"
)

// ProductsHandler serves the public catalog. Responses are cached; every
// admin write invalidates the products:* keys.
type ProductsHandler struct {
	repo  *catalog.Repo
	cache *cache.Cache
}

func NewProductsHandler(repo *catalog.Repo, cache *cache.Cache) *ProductsHandler {
	return &ProductsHandler{repo: repo, cache: cache}
}

func (h *ProductsHandler) List(c *gin.Context) {
	limit := parseQueryInt(c.Query("limit"), 24)
	offset := parseQueryInt(c.Query("offset"), 0)

	key := fmt.Sprintf("products:list:%d:%d", limit, offset)
	var items []catalog.Product
	if err := h.cache.Get(c.Request.Context(), key, &items); err == nil {
		c.JSON(http.StatusOK, gin.H{"data": items})
		return
	}

	items, err := h.repo.ListActive(c.Request.Context(), limit, offset)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	_ = h.cache.Set(c.Request.Context(), key, items)
	c.JSON(http.StatusOK, gin.H{"data": items})
}

func (h *ProductsHandler) Show(c *gin.Context) {
	slug := c.Param("slug")

	key := "products:slug:" + slug
	var p catalog.Product
	if err := h.cache.Get(c.Request.Context(), key, &p); err == nil {
		c.JSON(http.StatusOK, gin.H{"data": p})
		return
	}

	p, err := h.repo.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Product not found."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	_ = h.cache.Set(c.Request.Context(), key, p)
	c.JSON(http.StatusOK, gin.H{"data": p})
}

func parseQueryInt(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return def
	}
	return n
}
