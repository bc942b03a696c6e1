package sendpasswordresettoken

import (
	"encoding/json"
	"io"
	"net/http"
	c "storefront/internal/core/domain/common"
	"storefront/internal/core/services"
	sendservice "storefront/internal/core/services/send_password_reset_token"
	"storefront/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[sendservice.Input, sendservice.Result]
}

func New(service services.Service[sendservice.Input, sendservice.Result]) *Handler {
	return &Handler{service: service}
}

type Input struct {
	Email string `json:"email"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
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

	_, err := h.service.Run(r.Context(), sendservice.Input{Email: c.NewEmail(input.Email)})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	// Unknown emails get the same response as known ones.
	response.RenderSuccess(rw, nil, "Password reset message has been sent", http.StatusOK)
}
