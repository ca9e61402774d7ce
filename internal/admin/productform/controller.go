package productform

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/riod94/pitaya-store-sub001/internal/shared/slug"
)

const (
	msgLoadFailed   = "Failed to load product data."
	msgInvalidForm  = "Please fix the errors in the form."
	msgSaveFailed   = "Failed to update product."
	msgSaved        = "Product updated successfully."
	msgDeleteFailed = "Failed to delete product."
	msgDeleted      = "Product deleted successfully."
)

// Outcome is the adapter-boundary result. No error ever crosses the
// boundary as anything else; the caller decides how to surface Message.
type Outcome struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Controller drives one product editing session. It is not safe for
// concurrent use; like the form it models, it assumes a single caller.
type Controller struct {
	client    *Client
	store     *Store
	productID uint
	logger    *slog.Logger
}

func NewController(client *Client, productID uint, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		client:    client,
		store:     NewStore(),
		productID: productID,
		logger:    logger,
	}
}

func (c *Controller) State() State               { return c.store.State() }
func (c *Controller) Dispatch(actions ...Action) { c.store.Dispatch(actions...) }

// Load fetches the product and its variants jointly and populates the
// form. On any failure nothing is applied and a general error is set;
// the loading flags are cleared on every path so the session never
// hangs in a loading state.
func (c *Controller) Load(ctx context.Context) error {
	c.store.Dispatch(
		SetLoading{FlagLoading, true},
		SetLoading{FlagLoadingProduct, true},
		SetLoading{FlagLoadingVariants, true},
	)
	defer c.store.Dispatch(
		SetLoading{FlagLoading, false},
		SetLoading{FlagLoadingProduct, false},
		SetLoading{FlagLoadingVariants, false},
	)

	var (
		product  Product
		variants []Variant
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := c.client.GetProduct(gctx, c.productID)
		if err != nil {
			return err
		}
		product = p
		return nil
	})
	g.Go(func() error {
		vs, err := c.client.GetVariants(gctx, c.productID)
		if err != nil {
			return err
		}
		variants = vs
		return nil
	})

	if err := g.Wait(); err != nil {
		c.store.Dispatch(SetFormErrors{FormErrors{"general": msgLoadFailed}})
		return err
	}

	c.store.Dispatch(
		SetProduct{&product},
		SetFormData{projectProduct(product)},
	)
	if len(variants) > 0 {
		enabled := true
		c.store.Dispatch(
			SetVariants{projectVariants(variants)},
			SetFormData{FormPatch{VariantEnabled: &enabled}},
		)
	}
	return nil
}

// Save validates and, if clean, runs the persistence sequence: one PUT
// for the product, then in variant mode a delete-all followed by one
// POST per variant, strictly in list order. A failure anywhere stops
// the sequence; there is no rollback of steps already applied.
//
// images is the product image URL list to persist; nil keeps the loaded
// product's images.
func (c *Controller) Save(ctx context.Context, images []string) Outcome {
	state := c.store.State()

	errs := Validate(state.Form, state.Variants)
	c.store.Dispatch(SetFormErrors{errs})
	if len(errs) > 0 {
		return Outcome{Success: false, Message: msgInvalidForm}
	}

	c.store.Dispatch(SetLoading{FlagSaving, true})
	defer c.store.Dispatch(SetLoading{FlagSaving, false})

	return c.updateProduct(ctx, state, images)
}

func (c *Controller) updateProduct(ctx context.Context, state State, images []string) Outcome {
	form := state.Form

	// Single-product price feeds cost, basis and selling price alike; a
	// deliberate simplification carried over from the admin form.
	price := parseFloat(form.Price)
	payload := ProductPayload{
		Name:          strings.TrimSpace(form.Name),
		Slug:          slug.FromName(form.Name),
		Description:   form.Description,
		SKU:           strings.TrimSpace(form.SKU),
		CostPrice:     price,
		CostBasis:     price,
		SellingPrice:  price,
		Weight:        parseFloat(form.Weight),
		StockQuantity: parseInt(form.Stock),
		Status:        productStatus(state.Product),
		Images:        images,
		Length:        parseOptFloat(form.Length),
		Width:         parseOptFloat(form.Width),
		Height:        parseOptFloat(form.Height),
		CategoryID:    parseCategoryID(form.Category, state.Product),
	}
	if payload.Images == nil && state.Product != nil {
		payload.Images = state.Product.Images
	}

	if err := c.client.UpdateProduct(ctx, c.productID, payload); err != nil {
		return failure(err, msgSaveFailed)
	}

	if form.VariantEnabled && len(state.Variants) > 0 {
		if err := c.client.DeleteVariants(ctx, c.productID); err != nil {
			return failure(err, msgSaveFailed)
		}

		for i, v := range state.Variants {
			if strings.TrimSpace(v.Name) == "" || strings.TrimSpace(v.SKU) == "" {
				continue
			}

			vp := VariantPayload{
				ProductID:     c.productID,
				SKU:           strings.TrimSpace(v.SKU),
				Name:          strings.TrimSpace(v.Name),
				Attributes:    v.Attributes,
				CostPrice:     floatOr(v.Price, payload.CostPrice),
				CostBasis:     floatOr(v.Price, payload.CostBasis),
				SellingPrice:  floatOr(v.Price, payload.SellingPrice),
				StockQuantity: parseInt(v.Stock),
				Weight:        floatOr(v.Weight, payload.Weight),
				IsActive:      v.Status,
			}
			if _, err := c.client.CreateVariant(ctx, vp); err != nil {
				// The delete already went through: the product keeps a
				// partial variant set until the next successful save.
				c.logger.Warn("variant recreate stopped partway",
					slog.Uint64("product_id", uint64(c.productID)),
					slog.Int("created", i),
					slog.Int("total", len(state.Variants)),
					slog.Any("err", err),
				)
				return failure(err, msgSaveFailed)
			}
		}
	}

	return Outcome{Success: true, Message: msgSaved}
}

// Delete removes the product itself. Variant cleanup is the backend's
// concern.
func (c *Controller) Delete(ctx context.Context) Outcome {
	c.store.Dispatch(SetLoading{FlagLoading, true})
	defer c.store.Dispatch(SetLoading{FlagLoading, false})

	if err := c.client.DeleteProduct(ctx, c.productID); err != nil {
		return failure(err, msgDeleteFailed)
	}
	return Outcome{Success: true, Message: msgDeleted}
}

// failure surfaces a backend-supplied message verbatim when there is
// one; transport errors collapse to the generic fallback.
func failure(err error, fallback string) Outcome {
	var ae *APIError
	if errors.As(err, &ae) && ae.Message != "" {
		return Outcome{Success: false, Message: ae.Message}
	}
	return Outcome{Success: false, Message: fallback}
}

func projectProduct(p Product) FormPatch {
	name := p.Name
	desc := p.Description
	sku := p.SKU
	price := formatFloat(p.SellingPrice)
	stock := strconv.Itoa(p.StockQuantity)
	weight := formatFloat(p.Weight)
	length := formatOptFloat(p.Length)
	width := formatOptFloat(p.Width)
	height := formatOptFloat(p.Height)
	category := ""
	if p.CategoryID != nil {
		category = strconv.FormatUint(uint64(*p.CategoryID), 10)
	}

	return FormPatch{
		Name:        &name,
		Description: &desc,
		Category:    &category,
		SKU:         &sku,
		Price:       &price,
		Stock:       &stock,
		Weight:      &weight,
		Length:      &length,
		Width:       &width,
		Height:      &height,
	}
}

func projectVariants(in []Variant) []VariantForm {
	out := make([]VariantForm, 0, len(in))
	for _, v := range in {
		out = append(out, VariantForm{
			ID:         v.ID,
			Name:       v.Name,
			SKU:        v.SKU,
			Price:      formatFloat(v.SellingPrice),
			Stock:      strconv.Itoa(v.StockQuantity),
			Weight:     formatFloat(v.Weight),
			Attributes: v.Attributes,
			Status:     v.IsActive,
		})
	}
	return out
}

func productStatus(p *Product) string {
	if p != nil && p.Status != "" {
		return p.Status
	}
	return "active"
}

func parseCategoryID(category string, p *Product) *uint {
	if n, err := strconv.ParseUint(strings.TrimSpace(category), 10, 64); err == nil {
		id := uint(n)
		return &id
	}
	if p != nil {
		return p.CategoryID
	}
	return nil
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

func parseInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func parseOptFloat(s string) *float64 {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	f := parseFloat(s)
	return &f
}

func floatOr(s string, fallback float64) float64 {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return parseFloat(s)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatOptFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return formatFloat(*f)
}
