package listcategories

import (
	"net/http"
	"storefront/internal/core/services"
	listservice "storefront/internal/core/services/list_categories"
	"storefront/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[listservice.Input, listservice.Result]
}

func New(service services.Service[listservice.Input, listservice.Result]) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), listservice.Input{})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.RenderSuccess(
		rw,
		response.NewCategories(result.Categories),
		"Categories retrieved successfully",
		http.StatusOK,
	)
}
