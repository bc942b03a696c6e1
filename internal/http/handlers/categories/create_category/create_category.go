package createcategory

import (
	"encoding/json"
	"io"
	"net/http"
	"storefront/internal/core/services"
	createservice "storefront/internal/core/services/create_category"
	"storefront/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[createservice.Input, createservice.Result]
}

func New(service services.Service[createservice.Input, createservice.Result]) *Handler {
	return &Handler{service: service}
}

type Input struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.Length(1, 256)),
		validation.Field(&i.Description, validation.Length(0, 2048)),
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
		createservice.Input{Name: input.Name, Description: input.Description},
	)
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.RenderSuccess(
		rw,
		response.NewCategory(result.Category),
		"Category created successfully",
		http.StatusCreated,
	)
}
