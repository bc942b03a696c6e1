package updatecategory

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"storefront/internal/core/domain/category"
	"storefront/internal/core/services"
	updateservice "storefront/internal/core/services/update_category"
	"storefront/internal/http/handlers/response"
	"strconv"

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
	categoryID, err := strconv.ParseInt(chi.URLParam(r, "categoryID"), 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid category ID", http.StatusBadRequest)
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

	result, err := h.service.Run(
		r.Context(),
		updateservice.Input{
			ID:          category.ID(categoryID),
			Name:        input.Name,
			Description: input.Description,
		},
	)
	if errors.Is(err, category.ErrCategoryDoesNotExist) {
		response.RenderError(rw, "category not found", http.StatusNotFound)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.RenderSuccess(
		rw,
		response.NewCategory(result.Category),
		"Category updated successfully",
		http.StatusOK,
	)
}
