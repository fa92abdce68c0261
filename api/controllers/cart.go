package controllers

import (
	"net/http"

	"github.com/maisonluxe/storefront/api/responses"
	"github.com/maisonluxe/storefront/api/validators"
	"github.com/maisonluxe/storefront/internal/shop"
	pkgerrors "github.com/maisonluxe/storefront/pkg/errors"
	"github.com/maisonluxe/storefront/pkg/logger"
	"github.com/maisonluxe/storefront/pkg/types"
)

// CartFetch exposes the cart projection with derived totals.
func CartFetch(svc *shop.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shop service unavailable"))
			return
		}

		responses.WriteSuccess(w, svc.Cart())
	}
}

type addItemRequest struct {
	Product  types.Product `json:"product"`
	Quantity int           `json:"quantity" validate:"omitempty,min=1,max=99"`
}

// CartAddItem merges the posted product into the cart and opens the drawer.
// The product arrives whole because cart lines snapshot it at insertion.
func CartAddItem(svc *shop.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shop service unavailable"))
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if payload.Product.ID <= 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id must be positive"))
			return
		}

		quantity := payload.Quantity
		if quantity == 0 {
			quantity = 1
		}
		svc.AddToCartQuantity(r.Context(), payload.Product, quantity)
		responses.WriteSuccess(w, svc.Cart())
	}
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// CartSetQuantity updates a line quantity. Zero or negative removes the
// line; an unknown product id leaves the cart unchanged.
func CartSetQuantity(svc *shop.Service, logg *logger.Logger) http.HandlerFunc {
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

		var payload updateQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		svc.SetCartQuantity(id, *payload.Quantity)
		responses.WriteSuccess(w, svc.Cart())
	}
}

// CartRemoveItem deletes a line; absent ids are a no-op, not an error.
func CartRemoveItem(svc *shop.Service, logg *logger.Logger) http.HandlerFunc {
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

		svc.RemoveFromCart(id)
		responses.WriteSuccess(w, svc.Cart())
	}
}

// CartOpen, CartClose, and CartToggle flip the drawer visibility flag.
func CartOpen(svc *shop.Service, logg *logger.Logger) http.HandlerFunc {
	return visibilityHandler(svc, logg, func(s *shop.Service) { s.OpenCart() })
}

func CartClose(svc *shop.Service, logg *logger.Logger) http.HandlerFunc {
	return visibilityHandler(svc, logg, func(s *shop.Service) { s.CloseCart() })
}

func CartToggle(svc *shop.Service, logg *logger.Logger) http.HandlerFunc {
	return visibilityHandler(svc, logg, func(s *shop.Service) { s.ToggleCart() })
}

func visibilityHandler(svc *shop.Service, logg *logger.Logger, apply func(*shop.Service)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shop service unavailable"))
			return
		}

		apply(svc)
		responses.WriteSuccess(w, svc.Cart())
	}
}
