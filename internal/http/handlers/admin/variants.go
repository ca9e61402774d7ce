package admin

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/riod94/pitaya-store-sub001/internal/cache"
	"github.com/riod94/pitaya-store-sub001/internal/http/middleware"
	"github.com/riod94/pitaya-store-sub001/internal/http/validation"
	"github.com/riod94/pitaya-store-sub001/internal/modules/catalog"
	"github.com/riod94/pitaya-store-sub001/internal/shared/apperr"
)

// VariantsHandler implements the replace-all variant protocol: the form
// deletes a product's whole set, then recreates rows one POST at a time.
type VariantsHandler struct {
	repo  *catalog.Repo
	cache *cache.Cache
}

func NewVariantsHandler(repo *catalog.Repo, cache *cache.Cache) *VariantsHandler {
	return &VariantsHandler{repo: repo, cache: cache}
}

type variantInput struct {
	ProductID     uint              `json:"productId" binding:"required"`
	SKU           string            `json:"sku" binding:"required,max=64"`
	Name          string            `json:"name" binding:"required,max=255"`
	Attributes    map[string]string `json:"attributes"`
	CostPrice     float64           `json:"costPrice" binding:"gte=0"`
	CostBasis     float64           `json:"costBasis" binding:"gte=0"`
	SellingPrice  float64           `json:"sellingPrice" binding:"required,gt=0"`
	StockQuantity int               `json:"stockQuantity" binding:"gte=0"`
	Weight        float64           `json:"weight" binding:"gte=0"`
	Images        []string          `json:"images"`
	IsActive      *bool             `json:"isActive"`
}

func (h *VariantsHandler) ListByProduct(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	items, err := h.repo.ListVariants(c.Request.Context(), id)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

func (h *VariantsHandler) Create(c *gin.Context) {
	var in variantInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Missing required variant fields.", validation.FromBindError(err, &in)))
		return
	}

	// SKU is unique system-wide, not per product. Pre-check for a clean
	// 409; the unique index catches the race.
	exists, err := h.repo.VariantSKUExists(c.Request.Context(), in.SKU)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	if exists {
		middleware.Fail(c, apperr.ConflictErr("SKU already exists."))
		return
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	v := catalog.ProductVariant{
		ProductID:     in.ProductID,
		SKU:           in.SKU,
		Name:          in.Name,
		Attributes:    mapToJSON(in.Attributes),
		CostPrice:     in.CostPrice,
		CostBasis:     in.CostBasis,
		SellingPrice:  in.SellingPrice,
		StockQuantity: in.StockQuantity,
		Weight:        in.Weight,
		Images:        toJSON(in.Images),
		IsActive:      active,
	}
	if err := h.repo.CreateVariant(c.Request.Context(), &v); err != nil {
		if catalog.IsDuplicateKey(err) {
			middleware.Fail(c, apperr.ConflictErr("SKU already exists."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	h.cache.Invalidate(c.Request.Context(), "products:*")
	c.JSON(http.StatusCreated, gin.H{"message": "Variant created", "data": v})
}

func (h *VariantsHandler) DeleteByProduct(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.repo.DeleteVariantsByProduct(c.Request.Context(), id); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	h.cache.Invalidate(c.Request.Context(), "products:*")
	c.JSON(http.StatusOK, gin.H{"message": "Variants deleted"})
}

func mapToJSON(m map[string]string) datatypes.JSON {
	if len(m) == 0 {
		return datatypes.JSON("{}")
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return datatypes.JSON("{}")
	}
	return datatypes.JSON(raw)
}
