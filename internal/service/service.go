package service

import (
	"go.uber.org/zap"

	"github.com/datosargentinosjuniors/prestamosaaaj/config"
	"github.com/datosargentinosjuniors/prestamosaaaj/internal/repository"
)

// Service punto de entrada agregado de todos los servicios
type Service struct {
	Jugador     JugadorService
	Seguimiento SeguimientoService
	Reporte     ReporteService
	Resumen     ResumenService
	Export      ExportService
}

// NewService crea el agregado de servicios
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	logger *zap.Logger,
) *Service {
	resumen := NewResumenService(repo, logger)
	return &Service{
		Jugador:     NewJugadorService(repo, logger),
		Seguimiento: NewSeguimientoService(cfg, repo, logger),
		Reporte:     NewReporteService(repo, logger),
		Resumen:     resumen,
		Export:      NewExportService(repo, resumen, logger),
	}
}
