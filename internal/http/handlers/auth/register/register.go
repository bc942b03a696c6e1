package register

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	c "storefront/internal/core/domain/common"
	"storefront/internal/core/domain/user"
	"storefront/internal/core/services"
	registerservice "storefront/internal/core/services/register"
	"storefront/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[registerservice.Input, registerservice.Result]
}

func New(service services.Service[registerservice.Input, registerservice.Result]) *Handler {
	return &Handler{service: service}
}

type Input struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.Name, validation.Required, validation.Length(1, 256)),
		validation.Field(&i.Password, validation.Required, validation.Length(6, 256)),
		validation.Field(&i.Role, validation.In(string(user.RoleUser), string(user.RoleAdmin))),
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

	result, err := h.service.Run(
		r.Context(),
		registerservice.Input{
			Email:    c.NewEmail(input.Email),
			Name:     input.Name,
			Password: user.RawPassword(input.Password),
			Role:     user.Role(input.Role),
		},
	)
	if errors.Is(err, user.ErrEmailAlreadyExists) {
		response.RenderError(rw, "email already registered", http.StatusBadRequest)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.RenderSuccess(
		rw,
		response.NewUserWithToken(result.User, result.Token),
		"User registered successfully",
		http.StatusCreated,
	)
}
