package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ishqme/popup-capture/internal/entity"
)

const apiVersion = "2023-04"

type Client struct {
	storeURL    string
	accessToken string
	http        *http.Client
}

func NewClient(accessToken, storeURL string) *Client {
	return &Client{
		storeURL:    strings.TrimRight(storeURL, "/"),
		accessToken: accessToken,
		http:        &http.Client{Timeout: 10 * time.Second},
	}
}

// SearchByEmail looks for an exact email match. Returns (nil, nil) when
// no customer exists, an error only on transport/API failure.
func (c *Client) SearchByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	query := url.QueryEscape("email:" + email)
	endpoint := fmt.Sprintf("%s/admin/api/%s/customers/search.json?query=%s", c.storeURL, apiVersion, query)

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("shopify search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("shopify search rejected (status %d): %s", resp.StatusCode, string(body))
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("shopify search decode: %w", err)
	}

	if len(result.Customers) == 0 {
		return nil, nil
	}
	return &result.Customers[0], nil
}

// Create registers a new customer with marketing consent and the
// discount tag, and returns the record Shopify assigned.
func (c *Client) Create(ctx context.Context, input CreateCustomerInput) (*entity.Customer, error) {
	endpoint := fmt.Sprintf("%s/admin/api/%s/customers.json", c.storeURL, apiVersion)

	payload := customerEnvelope{Customer: customerPayload{
		Email:            input.Email,
		Phone:            input.Phone,
		Tags:             input.Tags,
		AcceptsMarketing: input.AcceptsMarketing,
	}}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("shopify create marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("shopify create request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("shopify create rejected (status %d): %s", resp.StatusCode, string(body))
	}

	var result customerResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("shopify create decode: %w", err)
	}
	return &result.Customer, nil
}

// UpdatePhone writes the new phone and discount tag onto an existing
// customer and returns the post-update record.
func (c *Client) UpdatePhone(ctx context.Context, id int64, phone, tags string) (*entity.Customer, error) {
	endpoint := fmt.Sprintf("%s/admin/api/%s/customers/%d.json", c.storeURL, apiVersion, id)

	payload := customerEnvelope{Customer: customerPayload{
		ID:    id,
		Phone: phone,
		Tags:  tags,
	}}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("shopify update marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "PUT", endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("shopify update request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("shopify update rejected (status %d): %s", resp.StatusCode, string(body))
	}

	var result customerResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("shopify update decode: %w", err)
	}
	return &result.Customer, nil
}

// setHeaders centralizes the required headers
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("X-Shopify-Access-Token", c.accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "IshqMePopupCapture/1.0")
}
