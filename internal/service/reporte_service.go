package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/datosargentinosjuniors/prestamosaaaj/internal/dto"
	"github.com/datosargentinosjuniors/prestamosaaaj/internal/model"
	"github.com/datosargentinosjuniors/prestamosaaaj/internal/repository"
	"github.com/datosargentinosjuniors/prestamosaaaj/pkg/planilla"
)

// ── módulo reportes — errores de negocio ──

var (
	ErrTituloVacio = errors.New("el título del reporte no puede estar vacío")
	ErrCuerpoVacio = errors.New("el cuerpo del reporte no puede estar vacío")
)

// ReporteService negocio de los reportes de scouting
type ReporteService interface {
	Crear(ctx context.Context, req *dto.CreateReporteRequest) (*dto.ReporteResponse, error)
	ListByJugador(ctx context.Context, jugadorID string) ([]dto.ReporteResponse, error)
}

type reporteService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewReporteService crea el servicio de reportes
func NewReporteService(repo *repository.Repository, logger *zap.Logger) ReporteService {
	return &reporteService{repo: repo, logger: logger}
}

// ────────────────────── Crear ──────────────────────

func (s *reporteService) Crear(ctx context.Context, req *dto.CreateReporteRequest) (*dto.ReporteResponse, error) {
	titulo := strings.TrimSpace(req.Titulo)
	if titulo == "" {
		return nil, ErrTituloVacio
	}
	cuerpo := strings.TrimSpace(req.Cuerpo)
	if cuerpo == "" {
		return nil, ErrCuerpoVacio
	}

	if _, err := s.repo.Jugador.GetByID(ctx, req.JugadorID); err != nil {
		if errors.Is(err, repository.ErrNoEncontrado) {
			return nil, ErrJugadorNoEncontrado
		}
		s.logger.Error("no se pudo leer el jugador", zap.String("jugador_id", req.JugadorID), zap.Error(err))
		return nil, err
	}

	fecha := planilla.ParseFecha(req.FechaReporte)
	if fecha.IsZero() {
		fecha = time.Now()
	}

	now := time.Now()
	rep := model.Reporte{
		ReporteID:    uuid.NewString(),
		JugadorID:    req.JugadorID,
		Titulo:       titulo,
		FechaReporte: fecha,
		Cuerpo:       cuerpo,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	reportes, err := s.repo.Reporte.List(ctx)
	if err != nil {
		s.logger.Error("no se pudo leer la hoja de reportes", zap.Error(err))
		return nil, err
	}
	reportes = append(reportes, rep)

	if err := s.repo.Reporte.SaveAll(ctx, reportes); err != nil {
		s.logger.Error("no se pudo guardar el reporte", zap.String("jugador_id", req.JugadorID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("reporte creado", zap.String("jugador_id", req.JugadorID), zap.String("titulo", titulo))
	return toReporteResponse(&rep), nil
}

// ────────────────────── ListByJugador ──────────────────────

// ListByJugador reportes de un jugador, del más reciente al más viejo
func (s *reporteService) ListByJugador(ctx context.Context, jugadorID string) ([]dto.ReporteResponse, error) {
	reportes, err := s.repo.Reporte.ListByJugador(ctx, jugadorID)
	if err != nil {
		s.logger.Error("no se pudo listar los reportes del jugador", zap.String("jugador_id", jugadorID), zap.Error(err))
		return nil, err
	}
	sort.Slice(reportes, func(a, b int) bool {
		return reportes[a].FechaReporte.After(reportes[b].FechaReporte)
	})

	result := make([]dto.ReporteResponse, 0, len(reportes))
	for i := range reportes {
		result = append(result, *toReporteResponse(&reportes[i]))
	}
	return result, nil
}

// ── conversión a DTO ──

func toReporteResponse(rep *model.Reporte) *dto.ReporteResponse {
	return &dto.ReporteResponse{
		ReporteID:    rep.ReporteID,
		JugadorID:    rep.JugadorID,
		Titulo:       rep.Titulo,
		FechaReporte: planilla.FormatFecha(rep.FechaReporte),
		Cuerpo:       rep.Cuerpo,
		CreatedAt:    planilla.FormatFechaHora(rep.CreatedAt),
		UpdatedAt:    planilla.FormatFechaHora(rep.UpdatedAt),
	}
}
