package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/riod94/pitaya-store-sub001/internal/cache"
	"github.com/riod94/pitaya-store-sub001/internal/http/middleware"
	"github.com/riod94/pitaya-store-sub001/internal/http/validation"
	"github.com/riod94/pitaya-store-sub001/internal/modules/catalog"
	"github.com/riod94/pitaya-store-sub001/internal/shared/apperr"
	"github.com/riod94/pitaya-store-sub001/internal/shared/slug"
)

type ProductsHandler struct {
	repo  *catalog.Repo
	cache *cache.Cache
}

func NewProductsHandler(repo *catalog.Repo, cache *cache.Cache) *ProductsHandler {
	return &ProductsHandler{repo: repo, cache: cache}
}

// productInput is the full editable field set. PUT replaces every field;
// there are no partial updates on this endpoint.
type productInput struct {
	Name          string   `json:"name" binding:"required,max=255"`
	Slug          string   `json:"slug" binding:"omitempty,max=255"`
	Description   string   `json:"description" binding:"required,max=5000"`
	SKU           string   `json:"sku" binding:"required,max=64"`
	// Prices may be zero: variant-priced products carry no product-level price.
	CostPrice     float64  `json:"costPrice" binding:"gte=0"`
	CostBasis     float64  `json:"costBasis" binding:"gte=0"`
	SellingPrice  float64  `json:"sellingPrice" binding:"gte=0"`
	Weight        float64  `json:"weight" binding:"gte=0"`
	StockQuantity int      `json:"stockQuantity" binding:"gte=0"`
	Status        string   `json:"status" binding:"omitempty,oneof=active inactive"`
	Images        []string `json:"images"`
	Length        *float64 `json:"length"`
	Width         *float64 `json:"width"`
	Height        *float64 `json:"height"`
	CategoryID    *uint    `json:"categoryId"`
}

func (h *ProductsHandler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

func (h *ProductsHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	p, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Product not found."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": p})
}

func (h *ProductsHandler) Create(c *gin.Context) {
	var in productInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid product data.", validation.FromBindError(err, &in)))
		return
	}

	p := productFromInput(in)
	if err := h.repo.Create(c.Request.Context(), &p); err != nil {
		if catalog.IsDuplicateKey(err) {
			middleware.Fail(c, apperr.ConflictErr("A product with this slug already exists."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	h.cache.Invalidate(c.Request.Context(), "products:*")
	c.JSON(http.StatusCreated, gin.H{"message": "Product created", "data": p})
}

func (h *ProductsHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var in productInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid product data.", validation.FromBindError(err, &in)))
		return
	}

	p := productFromInput(in)
	p.ID = id
	if err := h.repo.Update(c.Request.Context(), &p); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Product not found."))
			return
		}
		if catalog.IsDuplicateKey(err) {
			middleware.Fail(c, apperr.ConflictErr("A product with this slug already exists."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	h.cache.Invalidate(c.Request.Context(), "products:*")
	c.JSON(http.StatusOK, gin.H{"message": "Product updated", "data": p})
}

func (h *ProductsHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Product not found."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	h.cache.Invalidate(c.Request.Context(), "products:*")
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

func productFromInput(in productInput) catalog.Product {
	s := in.Slug
	if s == "" {
		s = slug.FromName(in.Name)
	}
	status := in.Status
	if status == "" {
		status = catalog.StatusActive
	}

	return catalog.Product{
		Name:          in.Name,
		Slug:          s,
		Description:   in.Description,
		SKU:           in.SKU,
		CostPrice:     in.CostPrice,
		CostBasis:     in.CostBasis,
		SellingPrice:  in.SellingPrice,
		Weight:        in.Weight,
		StockQuantity: in.StockQuantity,
		Status:        status,
		Images:        toJSON(in.Images),
		Length:        in.Length,
		Width:         in.Width,
		Height:        in.Height,
		CategoryID:    in.CategoryID,
	}
}

// toJSON keeps JSON columns non-null; an absent list becomes [].
func toJSON(list []string) datatypes.JSON {
	if len(list) == 0 {
		return datatypes.JSON("[]")
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(raw)
}

func paramID(c *gin.Context) (uint, bool) {
	n, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid id.", nil))
		return 0, false
	}
	return uint(n), true
}
