package productform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Product is the admin API's product shape as seen by the form.
type Product struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	Description   string   `json:"description"`
	SKU           string   `json:"sku"`
	CostPrice     float64  `json:"costPrice"`
	CostBasis     float64  `json:"costBasis"`
	SellingPrice  float64  `json:"sellingPrice"`
	Weight        float64  `json:"weight"`
	StockQuantity int      `json:"stockQuantity"`
	Status        string   `json:"status"`
	Images        []string `json:"images"`
	Length        *float64 `json:"length"`
	Width         *float64 `json:"width"`
	Height        *float64 `json:"height"`
	CategoryID    *uint    `json:"categoryId"`
}

type Variant struct {
	ID            uint              `json:"id"`
	ProductID     uint              `json:"productId"`
	SKU           string            `json:"sku"`
	Name          string            `json:"name"`
	Attributes    map[string]string `json:"attributes"`
	CostPrice     float64           `json:"costPrice"`
	CostBasis     float64           `json:"costBasis"`
	SellingPrice  float64           `json:"sellingPrice"`
	StockQuantity int               `json:"stockQuantity"`
	Weight        float64           `json:"weight"`
	IsActive      bool              `json:"isActive"`
}

// ProductPayload is the PUT body for a product update. The form always
// submits the complete field set.
type ProductPayload struct {
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	Description   string   `json:"description"`
	SKU           string   `json:"sku"`
	CostPrice     float64  `json:"costPrice"`
	CostBasis     float64  `json:"costBasis"`
	SellingPrice  float64  `json:"sellingPrice"`
	Weight        float64  `json:"weight"`
	StockQuantity int      `json:"stockQuantity"`
	Status        string   `json:"status"`
	Images        []string `json:"images"`
	Length        *float64 `json:"length"`
	Width         *float64 `json:"width"`
	Height        *float64 `json:"height"`
	CategoryID    *uint    `json:"categoryId"`
}

type VariantPayload struct {
	ProductID     uint              `json:"productId"`
	SKU           string            `json:"sku"`
	Name          string            `json:"name"`
	Attributes    map[string]string `json:"attributes"`
	CostPrice     float64           `json:"costPrice"`
	CostBasis     float64           `json:"costBasis"`
	SellingPrice  float64           `json:"sellingPrice"`
	StockQuantity int               `json:"stockQuantity"`
	Weight        float64           `json:"weight"`
	IsActive      bool              `json:"isActive"`
}

// APIError is a backend rejection: a non-2xx status whose body carried a
// message. Transport failures stay plain errors.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// Client talks to the admin product endpoints. It performs no retries;
// every failure is terminal for that call.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) GetProduct(ctx context.Context, id uint) (Product, error) {
	var out struct {
		Data Product `json:"data"`
	}
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/admin/products/%d", id), nil, &out)
	return out.Data, err
}

func (c *Client) GetVariants(ctx context.Context, productID uint) ([]Variant, error) {
	var out struct {
		Data []Variant `json:"data"`
	}
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/admin/products/%d/variants", productID), nil, &out)
	return out.Data, err
}

func (c *Client) UpdateProduct(ctx context.Context, id uint, p ProductPayload) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/admin/products/%d", id), p, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/products/%d", id), nil, nil)
}

// DeleteVariants removes the entire variant set of a product, the first
// half of the replace-all save sequence.
func (c *Client) DeleteVariants(ctx context.Context, productID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/products/%d/variants", productID), nil, nil)
}

func (c *Client) CreateVariant(ctx context.Context, p VariantPayload) (Variant, error) {
	var out struct {
		Message string  `json:"message"`
		Data    Variant `json:"data"`
	}
	err := c.do(ctx, http.MethodPost, "/api/admin/products/variants", p, &out)
	return out.Data, err
}

func (c *Client) do(ctx context.Context, method, path string, body, dst any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apiError(resp)
	}

	if dst == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func apiError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	msg := ""
	if json.Unmarshal(raw, &body) == nil {
		msg = body.Error
		if msg == "" {
			msg = body.Message
		}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}
