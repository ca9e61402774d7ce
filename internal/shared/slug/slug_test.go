package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/riod94/pitaya-store-sub001/internal/shared/slug"
)

func TestFromName(t *testing.T) {
	assert.Equal(t, "pistachio-cangkang", slug.FromName("Pistachio Cangkang!!"))
	assert.Equal(t, "a-b", slug.FromName("  A--B  "))
	assert.Equal(t, "kacang-mete-250g", slug.FromName("Kacang Mete (250g)"))
	assert.Equal(t, "product", slug.FromName("???"))
}

func TestFromNameIdempotent(t *testing.T) {
	in := []string{"Pistachio Cangkang!!", "  A--B  ", "already-a-slug"}
	for _, s := range in {
		once := slug.FromName(s)
		assert.Equal(t, once, slug.FromName(once))
	}
}
