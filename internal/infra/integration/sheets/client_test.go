package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testClient(baseURL string) *Client {
	return &Client{
		baseURL:       baseURL,
		spreadsheetID: "sheet-123",
		token:         "ya29.token",
		sheetRange:    "Sheet1!A:Z",
		http:          &http.Client{Timeout: 10 * time.Second},
	}
}

func TestAppendSendsRowWithBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/spreadsheets/sheet-123/values/Sheet1!A:Z:append", r.URL.Path)
		assert.Equal(t, "USER_ENTERED", r.URL.Query().Get("valueInputOption"))
		assert.Equal(t, "INSERT_ROWS", r.URL.Query().Get("insertDataOption"))
		assert.Equal(t, "Bearer ya29.token", r.Header.Get("Authorization"))

		var payload appendRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Len(t, payload.Values, 1)
		assert.Equal(t, []string{"a@b.com", "+919876543210", "5", "2026-08-30T12:00:00Z"}, payload.Values[0])

		w.Write([]byte(`{"spreadsheetId": "sheet-123", "updates": {"updatedRange": "Sheet1!A5:D5", "updatedRows": 1}}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	err := c.Append(context.Background(), []string{"a@b.com", "+919876543210", "5", "2026-08-30T12:00:00Z"})
	assert.NoError(t, err)
}

func TestAppendRejectedStatusIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"code": 403, "message": "The caller does not have permission"}}`, http.StatusForbidden)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	err := c.Append(context.Background(), []string{"a@b.com", "", "5", "ts"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}

func TestAppendZeroRowsIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"spreadsheetId": "sheet-123", "updates": {"updatedRows": 0}}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	err := c.Append(context.Background(), []string{"a@b.com", "", "5", "ts"})
	assert.Error(t, err)
}
