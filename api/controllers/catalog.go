package controllers

import (
	"net/http"

	"github.com/maisonluxe/storefront/api/responses"
	"github.com/maisonluxe/storefront/api/validators"
	"github.com/maisonluxe/storefront/internal/shop"
	pkgerrors "github.com/maisonluxe/storefront/pkg/errors"
	"github.com/maisonluxe/storefront/pkg/logger"
)

// CatalogFetch exposes the catalog projection: filtered items, vocabulary,
// active criteria, and the fetch lifecycle status.
func CatalogFetch(svc *shop.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shop service unavailable"))
			return
		}

		responses.WriteSuccess(w, svc.Catalog())
	}
}

// CatalogRefresh re-runs both collaborator fetches and returns the resulting
// catalog state, failed or not; a transport failure lands in the projection
// rather than in the response status.
func CatalogRefresh(svc *shop.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shop service unavailable"))
			return
		}

		if err := svc.RefreshCatalog(r.Context()); err != nil && logg != nil {
			logg.Warn(r.Context(), "catalog refresh completed with failures")
		}

		responses.WriteSuccess(w, svc.Catalog())
	}
}

type setCategoryRequest struct {
	Category string `json:"category" validate:"required"`
}

// CatalogSetCategory selects the active category filter. The value is not
// checked against the vocabulary; unknown categories filter to empty.
func CatalogSetCategory(svc *shop.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shop service unavailable"))
			return
		}

		var payload setCategoryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		svc.SetCategory(payload.Category)
		responses.WriteSuccess(w, svc.Catalog())
	}
}

type setSearchRequest struct {
	Query string `json:"query"`
}

// CatalogSetSearch sets the search text; an empty query clears it.
func CatalogSetSearch(svc *shop.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shop service unavailable"))
			return
		}

		var payload setSearchRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		svc.SetSearchQuery(payload.Query)
		responses.WriteSuccess(w, svc.Catalog())
	}
}

// CatalogProductDetail proxies a single-product fetch for the detail view.
func CatalogProductDetail(svc *shop.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shop service unavailable"))
			return
		}

		id, err := validators.ParamInt(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.ProductDetail(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}
