package updatecoupon

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	c "storefront/internal/core/domain/common"
	"storefront/internal/core/domain/coupon"
	"storefront/internal/core/services"
	updateservice "storefront/internal/core/services/update_coupon"
	"storefront/internal/http/handlers/response"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[updateservice.Input, updateservice.Result]
}

func New(service services.Service[updateservice.Input, updateservice.Result]) *Handler {
	return &Handler{service: service}
}

type Input struct {
	Code            string     `json:"code"`
	DiscountPercent uint32     `json:"discount_percent"`
	ExpiresAt       *time.Time `json:"expires_at"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Code, validation.Required, validation.Length(1, 64)),
		validation.Field(&i.DiscountPercent, validation.Required, validation.Max(uint32(100))),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	couponID, err := strconv.ParseInt(chi.URLParam(r, "couponID"), 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid coupon ID", http.StatusBadRequest)
		return
	}

	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderValidationError(rw, err)
		return
	}

	serviceInput := updateservice.Input{
		ID:              coupon.ID(couponID),
		Code:            coupon.Code(input.Code),
		DiscountPercent: input.DiscountPercent,
	}
	if input.ExpiresAt != nil {
		serviceInput.ExpiresAt = c.NewOptional(*input.ExpiresAt, true)
	}

	result, err := h.service.Run(r.Context(), serviceInput)
	if errors.Is(err, coupon.ErrCouponDoesNotExist) {
		response.RenderError(rw, "coupon not found", http.StatusNotFound)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.RenderSuccess(
		rw,
		response.NewCoupon(result.Coupon),
		"Coupon updated successfully",
		http.StatusOK,
	)
}
