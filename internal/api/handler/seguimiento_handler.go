package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/datosargentinosjuniors/prestamosaaaj/internal/dto"
	"github.com/datosargentinosjuniors/prestamosaaaj/internal/service"
	"github.com/datosargentinosjuniors/prestamosaaaj/pkg/response"
)

// SeguimientoHandler HTTP de la carga semanal
type SeguimientoHandler struct {
	seguimientoSvc service.SeguimientoService
}

// NewSeguimientoHandler crea el SeguimientoHandler
func NewSeguimientoHandler(seguimientoSvc service.SeguimientoService) *SeguimientoHandler {
	return &SeguimientoHandler{seguimientoSvc: seguimientoSvc}
}

// ListSeguimiento tabla completa de seguimiento
// GET /api/v1/seguimiento
func (h *SeguimientoHandler) ListSeguimiento(c *gin.Context) {
	registros, err := h.seguimientoSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": registros})
}

// CreateRegistro asienta la semana de un jugador
// POST /api/v1/seguimiento
func (h *SeguimientoHandler) CreateRegistro(c *gin.Context) {
	var req dto.CreateRegistroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "el cuerpo del request no pasó la validación")
		return
	}

	registro, err := h.seguimientoSvc.Crear(c.Request.Context(), &req)
	if err != nil {
		h.handleSeguimientoError(c, err)
		return
	}

	response.Created(c, registro)
}

// ReemplazarSeguimiento pisa la tabla completa (pantalla de administración)
// PUT /api/v1/seguimiento
func (h *SeguimientoHandler) ReemplazarSeguimiento(c *gin.Context) {
	var req dto.ReemplazarSeguimientoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "el cuerpo del request no pasó la validación")
		return
	}

	registros, err := h.seguimientoSvc.Reemplazar(c.Request.Context(), &req)
	if err != nil {
		h.handleSeguimientoError(c, err)
		return
	}

	response.OK(c, gin.H{"list": registros})
}

// handleSeguimientoError traduce los errores de negocio del módulo
func (h *SeguimientoHandler) handleSeguimientoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSemanaDuplicada):
		response.Conflict(c, 13001, "ya existe una carga para ese jugador en esa semana")
	case errors.Is(err, service.ErrJugadorInactivo):
		response.BadRequest(c, 13002, "el jugador no tiene un préstamo activo")
	case errors.Is(err, service.ErrFechaInvalida):
		response.BadRequest(c, 10001, "la fecha enviada no se pudo interpretar")
	case errors.Is(err, service.ErrJugadorNoEncontrado):
		response.NotFound(c, 12001, "el jugador no existe")
	default:
		response.InternalError(c)
	}
}
