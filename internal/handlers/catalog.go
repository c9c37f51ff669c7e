package handlers

import (
	"net/http"

	"github.com/catchup-chat/catchup/internal/tools"
)

// CatalogResponse lists the tools the gateway serves.
type CatalogResponse struct {
	Tools []tools.ToolInfo `json:"tools"`
	Total int              `json:"total"`
}

// Catalog handles the tool catalog endpoint.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	list := tools.Catalog()
	h.JSON(w, http.StatusOK, CatalogResponse{
		Tools: list,
		Total: len(list),
	})
}
