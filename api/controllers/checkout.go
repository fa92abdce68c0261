package controllers

import (
	"net/http"

	"github.com/maisonluxe/storefront/api/responses"
	"github.com/maisonluxe/storefront/internal/shop"
	pkgerrors "github.com/maisonluxe/storefront/pkg/errors"
	"github.com/maisonluxe/storefront/pkg/logger"
)

// Checkout produces the client-local order echo from the current cart.
func Checkout(svc *shop.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shop service unavailable"))
			return
		}

		receipt, err := svc.Checkout(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, receipt)
	}
}
