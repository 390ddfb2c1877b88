package space

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "spaces-list",
		Method:      http.MethodGet,
		Path:        "/spaces",
		Summary:     "Список пространств",
		Tags:        []string{"spaces"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "spaces-create",
		Method:        http.MethodPost,
		Path:          "/spaces",
		Summary:       "Создать пространство",
		Tags:          []string{"spaces"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) patchOp() huma.Operation {
	return huma.Operation{
		OperationID: "spaces-patch",
		Method:      http.MethodPatch,
		Path:        "/spaces/{id}",
		Summary:     "Частично обновить пространство",
		Tags:        []string{"spaces"},
		Middlewares: h.middleware,
	}
}
