package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://sheets.googleapis.com/v4"

// Client appends rows to one spreadsheet. Append-only: nothing in this
// service ever reads the sheet back.
type Client struct {
	baseURL       string
	spreadsheetID string
	token         string
	sheetRange    string
	http          *http.Client
}

func NewClient(token, spreadsheetID, sheetRange string) *Client {
	return &Client{
		baseURL:       defaultBaseURL,
		spreadsheetID: spreadsheetID,
		token:         token,
		sheetRange:    sheetRange,
		http:          &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Append(ctx context.Context, row []string) error {
	endpoint := fmt.Sprintf(
		"%s/spreadsheets/%s/values/%s:append?valueInputOption=USER_ENTERED&insertDataOption=INSERT_ROWS",
		c.baseURL, c.spreadsheetID, url.PathEscape(c.sheetRange),
	)

	payload := appendRequest{Values: [][]string{row}}
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("sheets append marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sheets append request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("sheets append rejected (status %d): %s", resp.StatusCode, string(body))
	}

	var result appendResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("sheets append decode: %w", err)
	}
	if result.Updates.UpdatedRows == 0 {
		return fmt.Errorf("sheets append wrote no rows (range %s)", c.sheetRange)
	}
	return nil
}
