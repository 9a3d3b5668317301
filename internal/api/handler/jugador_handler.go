package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/datosargentinosjuniors/prestamosaaaj/internal/dto"
	"github.com/datosargentinosjuniors/prestamosaaaj/internal/service"
	"github.com/datosargentinosjuniors/prestamosaaaj/pkg/response"
)

// JugadorHandler HTTP del plantel a préstamo. Concentra también las rutas
// anidadas del jugador (seguimiento, reportes, resumen individual).
type JugadorHandler struct {
	jugadorSvc     service.JugadorService
	seguimientoSvc service.SeguimientoService
	reporteSvc     service.ReporteService
	resumenSvc     service.ResumenService
}

// NewJugadorHandler crea el JugadorHandler
func NewJugadorHandler(
	jugadorSvc service.JugadorService,
	seguimientoSvc service.SeguimientoService,
	reporteSvc service.ReporteService,
	resumenSvc service.ResumenService,
) *JugadorHandler {
	return &JugadorHandler{
		jugadorSvc:     jugadorSvc,
		seguimientoSvc: seguimientoSvc,
		reporteSvc:     reporteSvc,
		resumenSvc:     resumenSvc,
	}
}

// ListJugadores lista el plantel con filtros opcionales
// GET /api/v1/jugadores
func (h *JugadorHandler) ListJugadores(c *gin.Context) {
	var req dto.JugadorListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "parámetros de consulta inválidos")
		return
	}

	jugadores, err := h.jugadorSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": jugadores})
}

// CreateJugador da de alta un jugador
// POST /api/v1/jugadores
func (h *JugadorHandler) CreateJugador(c *gin.Context) {
	var req dto.CreateJugadorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "el cuerpo del request no pasó la validación")
		return
	}

	jugador, err := h.jugadorSvc.Crear(c.Request.Context(), &req)
	if err != nil {
		h.handleJugadorError(c, err)
		return
	}

	response.Created(c, jugador)
}

// GetJugador devuelve un jugador por id
// GET /api/v1/jugadores/:id
func (h *JugadorHandler) GetJugador(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "falta el identificador del jugador")
		return
	}

	jugador, err := h.jugadorSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleJugadorError(c, err)
		return
	}

	response.OK(c, jugador)
}

// UpdateJugador edita un jugador
// PUT /api/v1/jugadores/:id
func (h *JugadorHandler) UpdateJugador(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "falta el identificador del jugador")
		return
	}

	var req dto.UpdateJugadorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "el cuerpo del request no pasó la validación")
		return
	}

	jugador, err := h.jugadorSvc.Actualizar(c.Request.Context(), id, &req)
	if err != nil {
		h.handleJugadorError(c, err)
		return
	}

	response.OK(c, jugador)
}

// BajaJugador rescinde el préstamo sin borrar la historia
// POST /api/v1/jugadores/:id/baja
func (h *JugadorHandler) BajaJugador(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "falta el identificador del jugador")
		return
	}

	var req dto.BajaJugadorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "el cuerpo del request no pasó la validación")
		return
	}

	jugador, err := h.jugadorSvc.Baja(c.Request.Context(), id, req.Motivo)
	if err != nil {
		h.handleJugadorError(c, err)
		return
	}

	response.OK(c, jugador)
}

// DeleteJugador borra definitivamente al jugador y su historial
// DELETE /api/v1/jugadores/:id
func (h *JugadorHandler) DeleteJugador(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "falta el identificador del jugador")
		return
	}

	if err := h.jugadorSvc.Eliminar(c.Request.Context(), id); err != nil {
		h.handleJugadorError(c, err)
		return
	}

	response.OK(c, nil)
}

// ListSeguimientoDeJugador historial semanal del jugador
// GET /api/v1/jugadores/:id/seguimiento
func (h *JugadorHandler) ListSeguimientoDeJugador(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "falta el identificador del jugador")
		return
	}

	registros, err := h.seguimientoSvc.ListByJugador(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": registros})
}

// ListReportesDeJugador reportes del jugador
// GET /api/v1/jugadores/:id/reportes
func (h *JugadorHandler) ListReportesDeJugador(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "falta el identificador del jugador")
		return
	}

	reportes, err := h.reporteSvc.ListByJugador(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": reportes})
}

// GetResumenDeJugador ficha completa del jugador
// GET /api/v1/jugadores/:id/resumen
func (h *JugadorHandler) GetResumenDeJugador(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "falta el identificador del jugador")
		return
	}

	vista, err := h.resumenSvc.VistaIndividual(c.Request.Context(), id)
	if err != nil {
		h.handleJugadorError(c, err)
		return
	}

	response.OK(c, vista)
}

// handleJugadorError traduce los errores de negocio del módulo
func (h *JugadorHandler) handleJugadorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrJugadorNoEncontrado):
		response.NotFound(c, 12001, "el jugador no existe")
	case errors.Is(err, service.ErrNombreVacio):
		response.BadRequest(c, 12002, "el nombre del jugador no puede estar vacío")
	case errors.Is(err, service.ErrPuestoInvalido):
		response.BadRequest(c, 12003, "el puesto no pertenece a la lista de puestos")
	case errors.Is(err, service.ErrDivisionInvalida):
		response.BadRequest(c, 12004, "la división no pertenece a la lista de divisiones")
	case errors.Is(err, service.ErrEstadoInvalido):
		response.BadRequest(c, 12005, "el estado no pertenece al ciclo de vida del préstamo")
	default:
		response.InternalError(c)
	}
}
