package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/datosargentinosjuniors/prestamosaaaj/internal/dto"
	"github.com/datosargentinosjuniors/prestamosaaaj/internal/service"
	"github.com/datosargentinosjuniors/prestamosaaaj/pkg/response"
)

// ResumenHandler HTTP de la tabla acumulada
type ResumenHandler struct {
	resumenSvc service.ResumenService
}

// NewResumenHandler crea el ResumenHandler
func NewResumenHandler(resumenSvc service.ResumenService) *ResumenHandler {
	return &ResumenHandler{resumenSvc: resumenSvc}
}

// GetResumen tabla acumulada con filtros y totales
// GET /api/v1/resumen
func (h *ResumenHandler) GetResumen(c *gin.Context) {
	var req dto.ResumenListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros de consulta inválidos")
		return
	}

	resumen, err := h.resumenSvc.TablaAcumulada(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrSinRegistros) {
			response.NotFound(c, 15001, "todavía no hay registros de seguimiento cargados")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, resumen)
}
