// Package api implements the REST client for the point-of-sale backend.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/tallyhq/tally/internal/common"
	"github.com/tallyhq/tally/internal/model"
)

// Options configures the API client.
type Options struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	Retry   common.RetryOptions
}

// Client talks to the backend's CRUD and reporting endpoints.
type Client struct {
	http   *resty.Client
	logger *slog.Logger
	retry  common.RetryOptions
}

// NewClient creates a client for the backend at opts.BaseURL.
func NewClient(opts Options, logger *slog.Logger) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("%w: api base url", common.ErrMissingConfig)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	httpClient := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetHeader("Accept", "application/json")
	if opts.Token != "" {
		httpClient.SetAuthToken(opts.Token)
	}

	return &Client{
		http:   httpClient,
		logger: logger,
		retry:  opts.Retry,
	}, nil
}

// ProductPage is one page of a product listing.
type ProductPage struct {
	Items []model.Product `json:"items"`
	Total int             `json:"total"`
	Page  int             `json:"page"`
}

// ListProducts fetches one page of the product inventory.
func (c *Client) ListProducts(ctx context.Context, page, perPage int) (*ProductPage, error) {
	var out ProductPage
	err := c.get(ctx, "/products", map[string]string{
		"page":     fmt.Sprintf("%d", page),
		"per_page": fmt.Sprintf("%d", perPage),
	}, &out)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	return &out, nil
}

// ListCategories fetches all product categories.
func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	var out []model.Category
	if err := c.get(ctx, "/categories", nil, &out); err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	return out, nil
}

// ListExpenseCategories fetches all expense categories.
func (c *Client) ListExpenseCategories(ctx context.Context) ([]model.ExpenseCategory, error) {
	var out []model.ExpenseCategory
	if err := c.get(ctx, "/expense-categories", nil, &out); err != nil {
		return nil, fmt.Errorf("listing expense categories: %w", err)
	}
	return out, nil
}

// ListSchemas fetches the dynamic product field schemas.
func (c *Client) ListSchemas(ctx context.Context) ([]model.FieldSchema, error) {
	var out []model.FieldSchema
	if err := c.get(ctx, "/schemas", nil, &out); err != nil {
		return nil, fmt.Errorf("listing schemas: %w", err)
	}
	return out, nil
}

// SalesSummary runs the sales-summary report query for the date range.
func (c *Client) SalesSummary(ctx context.Context, from, to time.Time) (*model.SalesSummary, error) {
	var out model.SalesSummary
	err := c.get(ctx, "/reports/sales", map[string]string{
		"from": from.Format("2006-01-02"),
		"to":   to.Format("2006-01-02"),
	}, &out)
	if err != nil {
		return nil, fmt.Errorf("querying sales summary: %w", err)
	}
	return &out, nil
}

type uploadResponse struct {
	URL string `json:"url"`
}

// UploadImage posts an image as multipart form data and returns the hosted
// URL.
func (c *Client) UploadImage(ctx context.Context, path string) (string, error) {
	var out uploadResponse
	err := common.WithRetry(ctx, func() error {
		resp, err := c.http.R().
			SetContext(ctx).
			SetFile("file", path).
			SetResult(&out).
			Post("/uploads")
		if err != nil {
			return err
		}
		return statusError(resp)
	}, c.retry)
	if err != nil {
		return "", fmt.Errorf("uploading image: %w", err)
	}
	return out.URL, nil
}

// get performs a GET with retry, decoding the JSON body into out.
func (c *Client) get(ctx context.Context, path string, query map[string]string, out any) error {
	c.logger.Debug("api request", "path", path, "query", query)
	return common.WithRetry(ctx, func() error {
		req := c.http.R().SetContext(ctx).SetResult(out)
		if query != nil {
			req.SetQueryParams(query)
		}
		resp, err := req.Get(path)
		if err != nil {
			return err
		}
		return statusError(resp)
	}, c.retry)
}

// statusError maps HTTP status codes onto the shared error taxonomy. Rate
// limits and server errors are retryable; everything else in 4xx is terminal.
func statusError(resp *resty.Response) error {
	switch {
	case resp.IsSuccess():
		return nil
	case resp.StatusCode() == http.StatusTooManyRequests:
		return common.ErrRateLimit
	case resp.StatusCode() >= http.StatusInternalServerError:
		return fmt.Errorf("%w: status %d", common.ErrServerError, resp.StatusCode())
	case resp.StatusCode() == http.StatusUnauthorized, resp.StatusCode() == http.StatusForbidden:
		return &common.RetryableError{Err: common.ErrUnauthorized, Retryable: false}
	case resp.StatusCode() == http.StatusNotFound:
		return &common.RetryableError{Err: common.ErrNotFound, Retryable: false}
	default:
		return &common.RetryableError{
			Err:       fmt.Errorf("unexpected status %d", resp.StatusCode()),
			Retryable: false,
		}
	}
}
