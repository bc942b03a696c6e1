package resetpassword

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"storefront/internal/core/domain/user"
	"storefront/internal/core/services"
	resetservice "storefront/internal/core/services/reset_password"
	"storefront/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[resetservice.Input, resetservice.Result]
}

func New(service services.Service[resetservice.Input, resetservice.Result]) *Handler {
	return &Handler{service: service}
}

type Input struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Token, validation.Required, validation.Length(1, 512)),
		validation.Field(&i.NewPassword, validation.Required, validation.Length(6, 256)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderValidationError(rw, err)
		return
	}

	_, err := h.service.Run(
		r.Context(),
		resetservice.Input{
			Token:       user.ResetToken(input.Token),
			NewPassword: user.RawPassword(input.NewPassword),
		},
	)
	if errors.Is(err, user.ErrInvalidResetToken) {
		response.RenderError(rw, "invalid or expired reset token", http.StatusBadRequest)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.RenderSuccess(rw, nil, "Password has been reset successfully", http.StatusOK)
}
