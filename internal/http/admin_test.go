package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzapos/internal/domain"
)

func TestAdminOrdersPage(t *testing.T) {
	app, _ := newTestApp(t, nil)

	resp, body := doJSON(t, app, http.MethodGet, "/admin/orders", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "No orders yet.")

	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/orders", placeOrderBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodGet, "/admin/orders", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page := string(body)
	assert.Contains(t, page, "Walk-in Customer")
	assert.Contains(t, page, "$47.53")
	assert.Contains(t, page, `href="/orders/1/receipt"`)
	assert.Contains(t, page, "<td>3</td>", "item count sums quantities")
}

func TestAdminProductsPage(t *testing.T) {
	app, _ := newTestApp(t, nil)
	doJSON(t, app, http.MethodPost, "/api/v1/coupons", domain.Coupon{Code: "PIZZA10", DiscountPercentage: 10, ExpirationDate: "2026-12-31"})

	resp, body := doJSON(t, app, http.MethodGet, "/admin/products", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page := string(body)
	assert.Contains(t, page, "Margherita Hardcore")
	assert.Contains(t, page, "$12.99")
	assert.Contains(t, page, "PIZZA10")
	assert.Equal(t, 6, strings.Count(page, "🍕"))
}

func TestAdminPagesStorageClosed(t *testing.T) {
	app, db := newTestApp(t, nil)
	require.NoError(t, db.Close())

	resp, body := doJSON(t, app, http.MethodGet, "/admin/orders", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Contains(t, string(body), "Could not load orders")
}
