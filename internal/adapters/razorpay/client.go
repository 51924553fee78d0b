package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/DanielPopoola/instprint-backend/internal/config"
	"github.com/DanielPopoola/instprint-backend/internal/core/domain"
	"github.com/DanielPopoola/instprint-backend/internal/core/ports"
)

const ordersPath = "/v1/orders"

type HTTPClient struct {
	baseURL    string
	keyID      string
	secret     string
	httpClient *http.Client
}

func NewClient(cfg config.RazorpayConfig) ports.PaymentProvider {
	return &HTTPClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		keyID:   cfg.KeyID,
		secret:  cfg.Secret,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (c *HTTPClient) CreateOrder(ctx context.Context, req domain.ProviderOrderRequest) (*domain.ProviderOrder, error) {
	body := orderRequest{
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  req.Receipt,
	}
	if req.PaymentCapture {
		body.PaymentCapture = 1
	}

	var resp orderResponse
	if err := c.postJSON(ctx, ordersPath, body, &resp); err != nil {
		return nil, err
	}

	if resp.ID == "" {
		return nil, ErrMissingOrderID
	}

	order := &domain.ProviderOrder{
		ID:       resp.ID,
		Amount:   resp.Amount,
		Currency: resp.Currency,
		Receipt:  resp.Receipt,
		Status:   resp.Status,
	}
	if resp.CreatedAt > 0 {
		order.CreatedAt = time.Unix(resp.CreatedAt, 0).UTC()
	}

	return order, nil
}

func (c *HTTPClient) postJSON(ctx context.Context, path string, req, out any) error {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("error marshalling json: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(c.keyID, c.secret)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		var errResp errorResponse
		if err := json.Unmarshal(raw, &errResp); err != nil || errResp.Error.Description == "" {
			return fmt.Errorf("razorpay returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
		}
		return &APIError{
			Code:        errResp.Error.Code,
			Description: errResp.Error.Description,
			Field:       errResp.Error.Field,
			StatusCode:  resp.StatusCode,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error decoding json response: %w", err)
	}

	return nil
}
