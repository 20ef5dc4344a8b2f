package handler

import (
	"fmt"
	"net/http"

	"agri-auction/internal/lookup"
	"agri-auction/utils"

	"github.com/gin-gonic/gin"
)

type LookupHandler struct {
	catalog *lookup.Catalog
}

func NewLookupHandler(catalog *lookup.Catalog) *LookupHandler {
	return &LookupHandler{catalog: catalog}
}

// ListHandler handles GET /lookups/:kind?lang=xx
func (h *LookupHandler) ListHandler(c *gin.Context) {
	kind := lookup.Kind(c.Param("kind"))
	lang := c.DefaultQuery("lang", lookup.DefaultLanguage)

	entries, ok := h.catalog.List(kind, lang)
	if !ok {
		err := fmt.Errorf("unknown lookup table %q", kind)
		utils.JSONError(c, http.StatusNotFound, err, "lookup table not found")
		return
	}
	utils.JSONResponse(c, http.StatusOK, entries, "lookup retrieved successfully")
}
