// Command productedit drives a product edit session against a running
// instance: load the product into the form, apply field overrides from
// flags, validate and save. Useful for scripted catalog fixes.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/riod94/pitaya-store-sub001/internal/admin/productform"
)

type listFlag []string

func (l *listFlag) String() string     { return strings.Join(*l, ",") }
func (l *listFlag) Set(v string) error { *l = append(*l, v); return nil }

func main() {
	_ = godotenv.Load()

	var (
		baseURL   = flag.String("base", envOr("API_BASE_URL", "http://localhost:8080"), "API base URL")
		token     = flag.String("token", os.Getenv("API_TOKEN"), "admin bearer token")
		productID = flag.Uint("id", 0, "product id to edit")
		doDelete  = flag.Bool("delete", false, "delete the product instead of editing")

		name     = flag.String("name", "", "override product name")
		desc     = flag.String("description", "", "override description")
		category = flag.String("category", "", "override category id")
		sku      = flag.String("sku", "", "override SKU")
		price    = flag.String("price", "", "override price")
		stock    = flag.String("stock", "", "override stock")
		weight   = flag.String("weight", "", "override weight")

		variants listFlag
	)
	flag.Var(&variants, "variant", "replace variants; repeatable, format name|sku|price[|stock[|weight]]")
	flag.Parse()

	if *productID == 0 {
		log.Fatal("-id is required")
	}
	if *token == "" {
		log.Fatal("-token (or API_TOKEN) is required")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	client := productform.NewClient(*baseURL, *token)
	ctrl := productform.NewController(client, *productID, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if *doDelete {
		out := ctrl.Delete(ctx)
		report(out)
		return
	}

	if err := ctrl.Load(ctx); err != nil {
		log.Fatalf("load failed: %v", err)
	}

	patch := productform.FormPatch{}
	setIf(&patch.Name, *name)
	setIf(&patch.Description, *desc)
	setIf(&patch.Category, *category)
	setIf(&patch.SKU, *sku)
	setIf(&patch.Price, *price)
	setIf(&patch.Stock, *stock)
	setIf(&patch.Weight, *weight)
	ctrl.Dispatch(productform.SetFormData{Patch: patch})

	if len(variants) > 0 {
		rows := make([]productform.VariantForm, 0, len(variants))
		for _, raw := range variants {
			row, err := parseVariant(raw)
			if err != nil {
				log.Fatalf("bad -variant %q: %v", raw, err)
			}
			rows = append(rows, row)
		}
		enabled := true
		ctrl.Dispatch(
			productform.SetVariants{Variants: rows},
			productform.SetFormData{Patch: productform.FormPatch{VariantEnabled: &enabled}},
		)
	}

	out := ctrl.Save(ctx, nil)
	if !out.Success {
		for field, msg := range ctrl.State().Errors {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
		}
	}
	report(out)
}

func report(out productform.Outcome) {
	fmt.Println(out.Message)
	if !out.Success {
		os.Exit(1)
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func setIf(dst **string, v string) {
	if v != "" {
		*dst = &v
	}
}

func parseVariant(raw string) (productform.VariantForm, error) {
	parts := strings.Split(raw, "|")
	if len(parts) < 3 {
		return productform.VariantForm{}, fmt.Errorf("need at least name|sku|price")
	}
	row := productform.VariantForm{
		Name:       parts[0],
		SKU:        parts[1],
		Price:      parts[2],
		Attributes: map[string]string{},
		Status:     true,
	}
	if len(parts) > 3 {
		row.Stock = parts[3]
	}
	if len(parts) > 4 {
		row.Weight = parts[4]
	}
	return row, nil
}
