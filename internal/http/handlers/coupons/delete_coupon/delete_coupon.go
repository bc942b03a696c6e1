package deletecoupon

import (
	"errors"
	"net/http"
	"storefront/internal/core/domain/coupon"
	"storefront/internal/core/services"
	deleteservice "storefront/internal/core/services/delete_coupon"
	"storefront/internal/http/handlers/response"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[deleteservice.Input, deleteservice.Result]
}

func New(service services.Service[deleteservice.Input, deleteservice.Result]) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	couponID, err := strconv.ParseInt(chi.URLParam(r, "couponID"), 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid coupon ID", http.StatusBadRequest)
		return
	}

	_, err = h.service.Run(r.Context(), deleteservice.Input{ID: coupon.ID(couponID)})
	if errors.Is(err, coupon.ErrCouponDoesNotExist) {
		response.RenderError(rw, "coupon not found", http.StatusNotFound)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.RenderSuccess(rw, nil, "Coupon deleted successfully", http.StatusOK)
}
