package item

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "items-list",
		Method:      http.MethodGet,
		Path:        "/items",
		Summary:     "Список предметов",
		Tags:        []string{"items"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "items-create",
		Method:        http.MethodPost,
		Path:          "/items",
		Summary:       "Создать предмет",
		Tags:          []string{"items"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) patchOp() huma.Operation {
	return huma.Operation{
		OperationID: "items-patch",
		Method:      http.MethodPatch,
		Path:        "/items/{id}",
		Summary:     "Частично обновить предмет",
		Tags:        []string{"items"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "items-delete",
		Method:        http.MethodDelete,
		Path:          "/items/{id}",
		Summary:       "Удалить предмет",
		Tags:          []string{"items"},
		DefaultStatus: http.StatusNoContent,
		Middlewares:   h.middleware,
	}
}
