package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/maisonluxe/storefront/internal/cart"
	"github.com/maisonluxe/storefront/internal/catalog"
	"github.com/maisonluxe/storefront/internal/shop"
	"github.com/maisonluxe/storefront/pkg/catalogapi"
	"github.com/maisonluxe/storefront/pkg/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, collaborator http.Handler) http.Handler {
	t.Helper()

	upstream := httptest.NewServer(collaborator)
	t.Cleanup(upstream.Close)

	client := catalogapi.NewClient(catalogapi.WithBaseURL(upstream.URL))
	svc, err := shop.NewService(shop.ServiceParams{
		Client:  client,
		Catalog: catalog.NewStore(),
		Cart:    cart.NewStore(),
	})
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.App.Env = "test"
	return NewRouter(cfg, nil, svc, prometheus.NewRegistry())
}

func fakeCollaborator() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/products/categories", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`["a","b"]`))
	})
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id":1,"title":"Gold Ring","price":10.00,"description":"classic","category":"a","image":"","rating":{"rate":4,"count":10}},
			{"id":2,"title":"Silver Ring","price":8.00,"description":"thin","category":"a","image":"","rating":{"rate":3,"count":5}},
			{"id":3,"title":"Walnut Desk","price":120.00,"description":"solid","category":"b","image":"","rating":{"rate":5,"count":2}}
		]`))
	})
	return mux
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) (int, map[string]any) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var envelope map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&envelope))
	return w.Code, envelope
}

func TestHealthLive(t *testing.T) {
	router := newTestRouter(t, fakeCollaborator())
	code, _ := doJSON(t, router, http.MethodGet, "/health/live", "")
	require.Equal(t, http.StatusOK, code)
}

func TestMetricsExposed(t *testing.T) {
	router := newTestRouter(t, fakeCollaborator())
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCatalogRefreshAndFilterRoundTrip(t *testing.T) {
	router := newTestRouter(t, fakeCollaborator())

	code, envelope := doJSON(t, router, http.MethodPost, "/api/v1/catalog/refresh", "")
	require.Equal(t, http.StatusOK, code)
	data := envelope["data"].(map[string]any)
	require.Equal(t, "succeeded", data["status"])
	require.Len(t, data["items"], 3)
	require.Equal(t, []any{"all", "a", "b"}, data["categories"])

	code, envelope = doJSON(t, router, http.MethodPut, "/api/v1/catalog/category", `{"category":"a"}`)
	require.Equal(t, http.StatusOK, code)
	data = envelope["data"].(map[string]any)
	require.Len(t, data["filtered_items"], 2)

	code, envelope = doJSON(t, router, http.MethodPut, "/api/v1/catalog/search", `{"query":"gold"}`)
	require.Equal(t, http.StatusOK, code)
	data = envelope["data"].(map[string]any)
	require.Len(t, data["filtered_items"], 1)
}

func TestCatalogRefreshSurfacesFailureInProjection(t *testing.T) {
	router := newTestRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	code, envelope := doJSON(t, router, http.MethodPost, "/api/v1/catalog/refresh", "")
	require.Equal(t, http.StatusOK, code)
	data := envelope["data"].(map[string]any)
	require.Equal(t, "failed", data["status"])
	require.NotEmpty(t, data["error"])
}

func TestCartLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t, fakeCollaborator())

	addBody := `{"product":{"id":1,"title":"Gold Ring","price":10.00,"description":"","category":"a","image":"","rating":{"rate":4,"count":10}}}`
	code, envelope := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", addBody)
	require.Equal(t, http.StatusOK, code)
	data := envelope["data"].(map[string]any)
	require.Equal(t, true, data["is_open"])
	require.Equal(t, float64(1), data["item_count"])

	code, envelope = doJSON(t, router, http.MethodPost, "/api/v1/cart/items", addBody)
	require.Equal(t, http.StatusOK, code)
	data = envelope["data"].(map[string]any)
	require.Equal(t, float64(2), data["item_count"])
	require.Len(t, data["lines"], 1)

	code, envelope = doJSON(t, router, http.MethodPut, "/api/v1/cart/items/1", `{"quantity":5}`)
	require.Equal(t, http.StatusOK, code)
	data = envelope["data"].(map[string]any)
	require.Equal(t, float64(5), data["item_count"])
	require.Equal(t, "50.00", data["subtotal"])

	code, envelope = doJSON(t, router, http.MethodPut, "/api/v1/cart/items/1", `{"quantity":0}`)
	require.Equal(t, http.StatusOK, code)
	data = envelope["data"].(map[string]any)
	require.Len(t, data["lines"], 0)

	code, _ = doJSON(t, router, http.MethodDelete, "/api/v1/cart/items/42", "")
	require.Equal(t, http.StatusOK, code)

	code, envelope = doJSON(t, router, http.MethodPost, "/api/v1/cart/toggle", "")
	require.Equal(t, http.StatusOK, code)
	data = envelope["data"].(map[string]any)
	require.Equal(t, false, data["is_open"])
}

func TestCheckoutOverHTTP(t *testing.T) {
	router := newTestRouter(t, fakeCollaborator())

	code, envelope := doJSON(t, router, http.MethodPost, "/api/v1/checkout", "")
	require.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, envelope["error"])

	addBody := `{"product":{"id":2,"title":"Silver Ring","price":8.00,"description":"","category":"a","image":"","rating":{"rate":3,"count":5}},"quantity":2}`
	code, _ = doJSON(t, router, http.MethodPost, "/api/v1/cart/items", addBody)
	require.Equal(t, http.StatusOK, code)

	code, envelope = doJSON(t, router, http.MethodPost, "/api/v1/checkout", "")
	require.Equal(t, http.StatusCreated, code)
	data := envelope["data"].(map[string]any)
	require.Equal(t, "16.00", data["total"])
	require.Len(t, data["items"], 1)
	require.Contains(t, data["order_number"], "LX-")

	code, envelope = doJSON(t, router, http.MethodGet, "/api/v1/cart/", "")
	require.Equal(t, http.StatusOK, code)
	data = envelope["data"].(map[string]any)
	require.Len(t, data["lines"], 0)
}

func TestProductDetailValidation(t *testing.T) {
	router := newTestRouter(t, fakeCollaborator())

	code, envelope := doJSON(t, router, http.MethodGet, "/api/v1/catalog/products/abc", "")
	require.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, envelope["error"])
}
