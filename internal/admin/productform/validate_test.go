package productform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSingleForm() FormData {
	return FormData{
		Name:        "Pistachio Cangkang",
		Description: "Roasted in-shell pistachios.",
		Category:    "3",
		SKU:         "PST-001",
		Price:       "64000",
		Stock:       "10",
	}
}

func TestValidateAcceptsCompleteSingleForm(t *testing.T) {
	errs := Validate(validSingleForm(), nil)
	assert.Empty(t, errs)
}

func TestValidateRequiredFields(t *testing.T) {
	errs := Validate(FormData{}, nil)

	for _, key := range []string{"name", "description", "category", "sku", "price", "stock"} {
		assert.Contains(t, errs, key)
	}
}

func TestValidateFieldLimits(t *testing.T) {
	form := validSingleForm()
	form.Name = strings.Repeat("a", 256)
	form.Description = strings.Repeat("b", 5001)

	errs := Validate(form, nil)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "description")
}

func TestValidatePriceAndStockRules(t *testing.T) {
	form := validSingleForm()
	form.Price = "0"
	form.Stock = "-1"
	errs := Validate(form, nil)
	assert.Contains(t, errs, "price")
	assert.Contains(t, errs, "stock")

	form.Price = "abc"
	form.Stock = "1.5"
	errs = Validate(form, nil)
	assert.Contains(t, errs, "price")
	assert.Contains(t, errs, "stock")
}

func TestValidateOptionalDimensions(t *testing.T) {
	form := validSingleForm()
	errs := Validate(form, nil)
	assert.Empty(t, errs, "blank dimensions are fine")

	form.Weight = "-2"
	form.Length = "0"
	form.Width = "abc"
	form.Height = "12.5"
	errs = Validate(form, nil)
	assert.Contains(t, errs, "weight")
	assert.Contains(t, errs, "length")
	assert.Contains(t, errs, "width")
	assert.NotContains(t, errs, "height")
}

func TestValidateVariantModeSkipsProductPricing(t *testing.T) {
	form := validSingleForm()
	form.VariantEnabled = true
	form.Price = ""
	form.Stock = ""

	errs := Validate(form, []VariantForm{
		{Name: "250g", SKU: "PST-250", Price: "64000"},
	})

	assert.NotContains(t, errs, "price")
	assert.NotContains(t, errs, "stock")
	assert.Empty(t, errs)
}

func TestValidateVariantModeNeedsAtLeastOneRow(t *testing.T) {
	form := validSingleForm()
	form.VariantEnabled = true

	errs := Validate(form, nil)
	assert.Contains(t, errs, "variants")
}

func TestValidateVariantRowErrorsUseIndexedKeys(t *testing.T) {
	form := validSingleForm()
	form.VariantEnabled = true

	errs := Validate(form, []VariantForm{
		{Name: "250g", SKU: "PST-250", Price: "64000"},
		{Name: "", SKU: "", Price: "0", Stock: "-3", Weight: "abc"},
	})

	assert.NotContains(t, errs, "variant_0_name")
	assert.Contains(t, errs, "variant_1_name")
	assert.Contains(t, errs, "variant_1_sku")
	assert.Contains(t, errs, "variant_1_price")
	assert.Contains(t, errs, "variant_1_stock")
	assert.Contains(t, errs, "variant_1_weight")
}

func TestValidateVariantOptionalFieldsMayBeBlank(t *testing.T) {
	form := validSingleForm()
	form.VariantEnabled = true

	errs := Validate(form, []VariantForm{
		{Name: "250g", SKU: "PST-250", Price: "64000", Stock: "", Weight: ""},
	})
	assert.Empty(t, errs)
}
