package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
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

func testRouter(t *testing.T) (*gin.Engine, *catalog.Repo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&catalog.Category{}, &catalog.Product{}, &catalog.ProductVariant{}))

	repo := catalog.NewRepo(db)
	h := NewVariantsHandler(repo, nil)

	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := gin.New()
	r.Use(middleware.ErrorHandler(l))
	r.GET("/api/admin/products/:id/variants", h.ListByProduct)
	r.DELETE("/api/admin/products/:id/variants", h.DeleteByProduct)
	r.POST("/api/admin/products/variants", h.Create)
	return r, repo
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validVariantBody(productID uint, sku string) map[string]any {
	return map[string]any{
		"productId":     productID,
		"sku":           sku,
		"name":          "250g",
		"attributes":    map[string]string{"size": "250g"},
		"sellingPrice":  64000,
		"stockQuantity": 4,
		"weight":        0.25,
	}
}

func TestVariantsCreate(t *testing.T) {
	r, repo := testRouter(t)
	p := catalog.Product{Name: "P", Slug: "p", Description: "d", SKU: "P-1", SellingPrice: 1, Status: catalog.StatusActive}
	require.NoError(t, repo.Create(context.Background(), &p))

	w := doJSON(t, r, http.MethodPost, "/api/admin/products/variants", validVariantBody(p.ID, "PST-250"))

	require.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		Message string                 `json:"message"`
		Data    catalog.ProductVariant `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Variant created", resp.Message)
	assert.NotZero(t, resp.Data.ID)
	assert.Equal(t, "PST-250", resp.Data.SKU)
	assert.True(t, resp.Data.IsActive, "defaults to active when isActive is absent")
}

func TestVariantsCreateMissingFields(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/products/variants", map[string]any{
		"productId": 1,
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Missing required variant fields.", resp.Error)
	assert.Contains(t, resp.Fields, "sku")
	assert.Contains(t, resp.Fields, "name")
	assert.Contains(t, resp.Fields, "sellingPrice")
}

func TestVariantsCreateDuplicateSKU(t *testing.T) {
	r, repo := testRouter(t)
	p := catalog.Product{Name: "P", Slug: "p", Description: "d", SKU: "P-1", SellingPrice: 1, Status: catalog.StatusActive}
	require.NoError(t, repo.Create(context.Background(), &p))

	w := doJSON(t, r, http.MethodPost, "/api/admin/products/variants", validVariantBody(p.ID, "PST-250"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/admin/products/variants", validVariantBody(p.ID, "PST-250"))
	require.Equal(t, http.StatusConflict, w.Code)

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SKU already exists.", resp.Error)
}

func TestVariantsDeleteByProduct(t *testing.T) {
	r, repo := testRouter(t)
	p := catalog.Product{Name: "P", Slug: "p", Description: "d", SKU: "P-1", SellingPrice: 1, Status: catalog.StatusActive}
	require.NoError(t, repo.Create(context.Background(), &p))

	for _, sku := range []string{"A-1", "A-2"} {
		w := doJSON(t, r, http.MethodPost, "/api/admin/products/variants", validVariantBody(p.ID, sku))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodDelete, "/api/admin/products/7777/variants", nil)
	require.Equal(t, http.StatusOK, w.Code, "deleting an empty set is not an error")

	w = doJSON(t, r, http.MethodDelete, "/api/admin/products/"+itoa(p.ID)+"/variants", nil)
	require.Equal(t, http.StatusOK, w.Code)

	vs, err := repo.ListVariants(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Empty(t, vs)
}

func itoa(n uint) string {
	return strconv.FormatUint(uint64(n), 10)
}
