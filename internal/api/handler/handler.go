package handler

import "github.com/datosargentinosjuniors/prestamosaaaj/internal/service"

// Handler punto de entrada agregado de todos los handlers
type Handler struct {
	Jugador     *JugadorHandler
	Seguimiento *SeguimientoHandler
	Reporte     *ReporteHandler
	Resumen     *ResumenHandler
	Export      *ExportHandler
}

// NewHandler crea el agregado de handlers
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Jugador:     NewJugadorHandler(svc.Jugador, svc.Seguimiento, svc.Reporte, svc.Resumen),
		Seguimiento: NewSeguimientoHandler(svc.Seguimiento),
		Reporte:     NewReporteHandler(svc.Reporte),
		Resumen:     NewResumenHandler(svc.Resumen),
		Export:      NewExportHandler(svc.Export),
	}
}
