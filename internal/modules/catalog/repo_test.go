package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testRepo(t *testing.T) *Repo {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Category{}, &Product{}, &ProductVariant{}))
	return NewRepo(db)
}

func seedProduct(t *testing.T, r *Repo, name, slug, status string) Product {
	t.Helper()
	p := Product{
		Name:         name,
		Slug:         slug,
		Description:  "desc",
		SKU:          "SKU-" + slug,
		SellingPrice: 64000,
		Status:       status,
	}
	require.NoError(t, r.Create(context.Background(), &p))
	return p
}

func TestRepoGetBySlugOnlyReturnsActive(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()

	seedProduct(t, r, "Pistachio Cangkang", "pistachio-cangkang", StatusActive)
	seedProduct(t, r, "Hidden", "hidden", StatusInactive)

	p, err := r.GetBySlug(ctx, "pistachio-cangkang")
	require.NoError(t, err)
	assert.Equal(t, "Pistachio Cangkang", p.Name)

	_, err = r.GetBySlug(ctx, "hidden")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepoUpdateMissingProduct(t *testing.T) {
	r := testRepo(t)

	err := r.Update(context.Background(), &Product{ID: 999, Name: "x", Slug: "x"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepoUpdateWritesZeroValues(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()

	p := seedProduct(t, r, "Pistachio Cangkang", "pistachio-cangkang", StatusActive)
	p.StockQuantity = 0
	p.Weight = 0
	require.NoError(t, r.Update(ctx, &p))

	got, err := r.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Zero(t, got.StockQuantity)
	assert.Zero(t, got.Weight)
}

func TestRepoDeleteRemovesVariants(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()

	p := seedProduct(t, r, "Pistachio Cangkang", "pistachio-cangkang", StatusActive)
	require.NoError(t, r.CreateVariant(ctx, &ProductVariant{ProductID: p.ID, SKU: "PST-250", Name: "250g"}))

	require.NoError(t, r.Delete(ctx, p.ID))

	vs, err := r.ListVariants(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, vs)

	assert.ErrorIs(t, r.Delete(ctx, p.ID), gorm.ErrRecordNotFound)
}

func TestRepoDeleteVariantsByProduct(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()

	a := seedProduct(t, r, "A", "a", StatusActive)
	b := seedProduct(t, r, "B", "b", StatusActive)
	require.NoError(t, r.CreateVariant(ctx, &ProductVariant{ProductID: a.ID, SKU: "A-1", Name: "1"}))
	require.NoError(t, r.CreateVariant(ctx, &ProductVariant{ProductID: a.ID, SKU: "A-2", Name: "2"}))
	require.NoError(t, r.CreateVariant(ctx, &ProductVariant{ProductID: b.ID, SKU: "B-1", Name: "1"}))

	require.NoError(t, r.DeleteVariantsByProduct(ctx, a.ID))

	va, err := r.ListVariants(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, va)

	vb, err := r.ListVariants(ctx, b.ID)
	require.NoError(t, err)
	assert.Len(t, vb, 1, "other products keep their variants")
}

func TestRepoVariantSKUIsGlobalUnique(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()

	a := seedProduct(t, r, "A", "a", StatusActive)
	b := seedProduct(t, r, "B", "b", StatusActive)
	require.NoError(t, r.CreateVariant(ctx, &ProductVariant{ProductID: a.ID, SKU: "SHARED", Name: "1"}))

	exists, err := r.VariantSKUExists(ctx, "SHARED")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = r.VariantSKUExists(ctx, "OTHER")
	require.NoError(t, err)
	assert.False(t, exists)

	// Same SKU under a different product still violates the index.
	err = r.CreateVariant(ctx, &ProductVariant{ProductID: b.ID, SKU: "SHARED", Name: "1"})
	require.Error(t, err)
	assert.True(t, IsDuplicateKey(err))
}

func TestRepoListActiveFiltersInactiveVariants(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()

	p := seedProduct(t, r, "Pistachio Cangkang", "pistachio-cangkang", StatusActive)
	require.NoError(t, r.CreateVariant(ctx, &ProductVariant{ProductID: p.ID, SKU: "ON", Name: "on", IsActive: true}))
	require.NoError(t, r.CreateVariant(ctx, &ProductVariant{ProductID: p.ID, SKU: "OFF", Name: "off", IsActive: false}))
	seedProduct(t, r, "Hidden", "hidden", StatusInactive)

	items, err := r.ListActive(ctx, 24, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Len(t, items[0].Variants, 1)
	assert.Equal(t, "ON", items[0].Variants[0].SKU)
}
