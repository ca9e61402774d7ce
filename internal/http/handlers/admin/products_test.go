package admin

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/riod94/pitaya-store-sub001/internal/http/middleware"
	"github.com/riod94/pitaya-store-sub001/internal/modules/catalog"
)

func productsTestRouter(t *testing.T) (*gin.Engine, *catalog.Repo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&catalog.Category{}, &catalog.Product{}, &catalog.ProductVariant{}))

	repo := catalog.NewRepo(db)
	h := NewProductsHandler(repo, nil)

	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := gin.New()
	r.Use(middleware.ErrorHandler(l))
	r.POST("/api/admin/products", h.Create)
	r.PUT("/api/admin/products/:id", h.Update)
	return r, repo
}

func validProductBody() map[string]any {
	return map[string]any{
		"name":          "Pistachio Cangkang",
		"description":   "Roasted, lightly salted.",
		"sku":           "PST-001",
		"costPrice":     64000,
		"costBasis":     64000,
		"sellingPrice":  64000,
		"weight":        1.2,
		"stockQuantity": 10,
		"status":        "active",
		"images":        []string{"/uploads/products/pst.jpg"},
	}
}

func TestProductsUpdateAcceptsZeroPriceForVariantPricedProduct(t *testing.T) {
	r, repo := productsTestRouter(t)
	p := catalog.Product{Name: "P", Slug: "p", Description: "d", SKU: "P-1", SellingPrice: 64000, Status: catalog.StatusActive}
	require.NoError(t, repo.Create(context.Background(), &p))

	// Variant-priced products save with all product-level prices at zero.
	body := validProductBody()
	body["costPrice"] = 0
	body["costBasis"] = 0
	body["sellingPrice"] = 0
	body["stockQuantity"] = 0

	w := doJSON(t, r, http.MethodPut, "/api/admin/products/"+itoa(p.ID), body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	got, err := repo.Get(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Zero(t, got.SellingPrice)
	assert.Zero(t, got.CostPrice)
	assert.Zero(t, got.StockQuantity)
}

func TestProductsUpdateRejectsNegativePrice(t *testing.T) {
	r, repo := productsTestRouter(t)
	p := catalog.Product{Name: "P", Slug: "p", Description: "d", SKU: "P-1", SellingPrice: 64000, Status: catalog.StatusActive}
	require.NoError(t, repo.Create(context.Background(), &p))

	body := validProductBody()
	body["sellingPrice"] = -1

	w := doJSON(t, r, http.MethodPut, "/api/admin/products/"+itoa(p.ID), body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "sellingPrice")
}
