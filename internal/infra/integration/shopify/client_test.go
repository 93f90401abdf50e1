package shopify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchByEmailFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/admin/api/2023-04/customers/search.json", r.URL.Path)
		assert.Equal(t, "email:a@b.com", r.URL.Query().Get("query"))
		assert.Equal(t, "token-123", r.Header.Get("X-Shopify-Access-Token"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"customers": [{"id": 42, "email": "a@b.com", "phone": "+919876543210"}]}`))
	}))
	defer srv.Close()

	c := NewClient("token-123", srv.URL)
	customer, err := c.SearchByEmail(context.Background(), "a@b.com")

	assert.NoError(t, err)
	assert.Equal(t, int64(42), customer.ID)
	assert.Equal(t, "+919876543210", customer.Phone)
}

func TestSearchByEmailNotFoundIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"customers": []}`))
	}))
	defer srv.Close()

	c := NewClient("token-123", srv.URL)
	customer, err := c.SearchByEmail(context.Background(), "nobody@b.com")

	assert.NoError(t, err)
	assert.Nil(t, customer)
}

func TestSearchByEmailServerErrorIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors": "something broke"}`, http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient("token-123", srv.URL)
	customer, err := c.SearchByEmail(context.Background(), "a@b.com")

	assert.Nil(t, customer)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestCreateSendsEnvelopeAndDecodesCustomer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/admin/api/2023-04/customers.json", r.URL.Path)

		var envelope map[string]map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&envelope))
		customer := envelope["customer"]
		assert.Equal(t, "new@example.com", customer["email"])
		assert.Equal(t, "+919876543210", customer["phone"])
		assert.Equal(t, "5", customer["tags"])
		assert.Equal(t, true, customer["accepts_marketing"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"customer": {"id": 7, "email": "new@example.com", "phone": "+919876543210", "accepts_marketing": true}}`))
	}))
	defer srv.Close()

	c := NewClient("token-123", srv.URL)
	customer, err := c.Create(context.Background(), CreateCustomerInput{
		Email:            "new@example.com",
		Phone:            "+919876543210",
		Tags:             "5",
		AcceptsMarketing: true,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), customer.ID)
	assert.True(t, customer.AcceptsMarketing)
}

func TestCreateOmitsEmptyPhone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var envelope map[string]map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&envelope))
		_, hasPhone := envelope["customer"]["phone"]
		assert.False(t, hasPhone)

		w.Write([]byte(`{"customer": {"id": 8, "email": "new@example.com"}}`))
	}))
	defer srv.Close()

	c := NewClient("token-123", srv.URL)
	_, err := c.Create(context.Background(), CreateCustomerInput{Email: "new@example.com", AcceptsMarketing: true})
	assert.NoError(t, err)
}

func TestUpdatePhoneHitsCustomerResource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/admin/api/2023-04/customers/42.json", r.URL.Path)

		var envelope map[string]map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&envelope))
		assert.Equal(t, float64(42), envelope["customer"]["id"])
		assert.Equal(t, "+919876543210", envelope["customer"]["phone"])
		assert.Equal(t, "10", envelope["customer"]["tags"])

		w.Write([]byte(`{"customer": {"id": 42, "email": "a@b.com", "phone": "+919876543210", "tags": "10"}}`))
	}))
	defer srv.Close()

	c := NewClient("token-123", srv.URL)
	customer, err := c.UpdatePhone(context.Background(), 42, "+919876543210", "10")

	assert.NoError(t, err)
	assert.Equal(t, "+919876543210", customer.Phone)
	assert.Equal(t, "10", customer.Tags)
}
