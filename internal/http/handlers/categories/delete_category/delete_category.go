package deletecategory

import (
	"errors"
	"net/http"
	"storefront/internal/core/domain/category"
	"storefront/internal/core/services"
	deleteservice "storefront/internal/core/services/delete_category"
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
	categoryID, err := strconv.ParseInt(chi.URLParam(r, "categoryID"), 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid category ID", http.StatusBadRequest)
		return
	}

	_, err = h.service.Run(r.Context(), deleteservice.Input{ID: category.ID(categoryID)})
	if errors.Is(err, category.ErrCategoryDoesNotExist) {
		response.RenderError(rw, "category not found", http.StatusNotFound)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.RenderSuccess(rw, nil, "Category deleted successfully", http.StatusOK)
}
