package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/datosargentinosjuniors/prestamosaaaj/internal/dto"
	"github.com/datosargentinosjuniors/prestamosaaaj/internal/service"
	"github.com/datosargentinosjuniors/prestamosaaaj/pkg/response"
)

// ReporteHandler HTTP de los reportes de scouting
type ReporteHandler struct {
	reporteSvc service.ReporteService
}

// NewReporteHandler crea el ReporteHandler
func NewReporteHandler(reporteSvc service.ReporteService) *ReporteHandler {
	return &ReporteHandler{reporteSvc: reporteSvc}
}

// CreateReporte da de alta un reporte
// POST /api/v1/reportes
func (h *ReporteHandler) CreateReporte(c *gin.Context) {
	var req dto.CreateReporteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "el cuerpo del request no pasó la validación")
		return
	}

	reporte, err := h.reporteSvc.Crear(c.Request.Context(), &req)
	if err != nil {
		h.handleReporteError(c, err)
		return
	}

	response.Created(c, reporte)
}

// handleReporteError traduce los errores de negocio del módulo
func (h *ReporteHandler) handleReporteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTituloVacio):
		response.BadRequest(c, 14001, "el título del reporte no puede estar vacío")
	case errors.Is(err, service.ErrCuerpoVacio):
		response.BadRequest(c, 14002, "el cuerpo del reporte no puede estar vacío")
	case errors.Is(err, service.ErrJugadorNoEncontrado):
		response.NotFound(c, 12001, "el jugador no existe")
	default:
		response.InternalError(c)
	}
}
