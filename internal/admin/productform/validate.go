package productform

import (
	"fmt"
	"strconv"
	"strings"
)

// Validate collects every rule violation; it never short-circuits. The
// result replaces the previous error map wholesale. An empty map means
// the form may be submitted.
//
// Per-product price/stock are only required in single-SKU mode; with
// variants enabled pricing comes from the variant rows instead.
func Validate(form FormData, variants []VariantForm) FormErrors {
	errs := FormErrors{}

	name := strings.TrimSpace(form.Name)
	switch {
	case name == "":
		errs["name"] = "Name is required."
	case len(form.Name) > 255:
		errs["name"] = "Name must be at most 255 characters."
	}

	switch {
	case strings.TrimSpace(form.Description) == "":
		errs["description"] = "Description is required."
	case len(form.Description) > 5000:
		errs["description"] = "Description must be at most 5000 characters."
	}

	if strings.TrimSpace(form.Category) == "" {
		errs["category"] = "Category is required."
	}

	if strings.TrimSpace(form.SKU) == "" {
		errs["sku"] = "SKU is required."
	}

	if !form.VariantEnabled {
		if strings.TrimSpace(form.Price) == "" {
			errs["price"] = "Price is required."
		} else if !isPositiveNumber(form.Price) {
			errs["price"] = "Price must be a positive number."
		}

		if strings.TrimSpace(form.Stock) == "" {
			errs["stock"] = "Stock is required."
		} else if !isNonNegativeInt(form.Stock) {
			errs["stock"] = "Stock must be a non-negative whole number."
		}
	}

	optionalPositive(errs, "weight", form.Weight)
	optionalPositive(errs, "length", form.Length)
	optionalPositive(errs, "width", form.Width)
	optionalPositive(errs, "height", form.Height)

	if form.VariantEnabled {
		if len(variants) == 0 {
			errs["variants"] = "Add at least one variant."
		}
		for i, v := range variants {
			if strings.TrimSpace(v.Name) == "" {
				errs[variantKey(i, "name")] = "Variant name is required."
			}
			if strings.TrimSpace(v.SKU) == "" {
				errs[variantKey(i, "sku")] = "Variant SKU is required."
			}
			if strings.TrimSpace(v.Price) == "" {
				errs[variantKey(i, "price")] = "Variant price is required."
			} else if !isPositiveNumber(v.Price) {
				errs[variantKey(i, "price")] = "Variant price must be a positive number."
			}
			if strings.TrimSpace(v.Stock) != "" && !isNonNegativeInt(v.Stock) {
				errs[variantKey(i, "stock")] = "Variant stock must be a non-negative whole number."
			}
			if strings.TrimSpace(v.Weight) != "" && !isPositiveNumber(v.Weight) {
				errs[variantKey(i, "weight")] = "Variant weight must be a positive number."
			}
		}
	}

	return errs
}

func variantKey(index int, field string) string {
	return fmt.Sprintf("variant_%d_%s", index, field)
}

func optionalPositive(errs FormErrors, key, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	if !isPositiveNumber(value) {
		errs[key] = "Must be a positive number."
	}
}

func isPositiveNumber(s string) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil && f > 0
}

func isNonNegativeInt(s string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return err == nil && n >= 0
}
