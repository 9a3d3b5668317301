package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/datosargentinosjuniors/prestamosaaaj/config"
	"github.com/datosargentinosjuniors/prestamosaaaj/internal/dto"
	"github.com/datosargentinosjuniors/prestamosaaaj/internal/model"
	"github.com/datosargentinosjuniors/prestamosaaaj/internal/repository"
	"github.com/datosargentinosjuniors/prestamosaaaj/pkg/planilla"
	"github.com/datosargentinosjuniors/prestamosaaaj/pkg/semana"
)

// ── módulo seguimiento — errores de negocio ──

var (
	ErrSemanaDuplicada = errors.New("ya existe una carga para ese jugador en esa semana")
	ErrJugadorInactivo = errors.New("el jugador no tiene un préstamo activo")
	ErrFechaInvalida   = errors.New("la fecha enviada no se pudo interpretar")
)

// SeguimientoService negocio de la carga semanal de estadísticas
type SeguimientoService interface {
	Crear(ctx context.Context, req *dto.CreateRegistroRequest) (*dto.RegistroResponse, error)
	List(ctx context.Context) ([]dto.RegistroResponse, error)
	ListByJugador(ctx context.Context, jugadorID string) ([]dto.RegistroResponse, error)
	Reemplazar(ctx context.Context, req *dto.ReemplazarSeguimientoRequest) ([]dto.RegistroResponse, error)
}

type seguimientoService struct {
	convencion semana.Convencion
	repo       *repository.Repository
	logger     *zap.Logger
}

// NewSeguimientoService crea el servicio de seguimiento
func NewSeguimientoService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) SeguimientoService {
	return &seguimientoService{
		convencion: semana.Convencion(cfg.Semana.Convencion),
		repo:       repo,
		logger:     logger,
	}
}

// ────────────────────── Crear ──────────────────────

// Crear asienta la semana de un jugador activo. La fecha enviada puede caer
// en cualquier día de la semana: la ventana se calcula acá y la clave de
// unicidad es (jugador, inicio de semana).
func (s *seguimientoService) Crear(ctx context.Context, req *dto.CreateRegistroRequest) (*dto.RegistroResponse, error) {
	j, err := s.repo.Jugador.GetByID(ctx, req.JugadorID)
	if err != nil {
		if errors.Is(err, repository.ErrNoEncontrado) {
			return nil, ErrJugadorNoEncontrado
		}
		s.logger.Error("no se pudo leer el jugador", zap.String("jugador_id", req.JugadorID), zap.Error(err))
		return nil, err
	}
	if j.Estado != model.EstadoActivo {
		return nil, ErrJugadorInactivo
	}

	fecha := planilla.ParseFecha(req.Fecha)
	if fecha.IsZero() {
		return nil, ErrFechaInvalida
	}
	inicio, fin := semana.Ventana(fecha, s.convencion)

	registros, err := s.repo.Seguimiento.List(ctx)
	if err != nil {
		s.logger.Error("no se pudo leer la hoja de seguimiento", zap.Error(err))
		return nil, err
	}
	for i := range registros {
		if registros[i].JugadorID == req.JugadorID && registros[i].WeekStart.Equal(inicio) {
			return nil, ErrSemanaDuplicada
		}
	}

	now := time.Now()
	reg := model.RegistroSemanal{
		RegistroID:     uuid.NewString(),
		JugadorID:      req.JugadorID,
		WeekStart:      inicio,
		WeekEnd:        fin,
		Partidos:       req.Partidos,
		Minutos:        req.Minutos,
		GolesMarcados:  req.GolesMarcados,
		GolesEncajados: req.GolesEncajados,
		Amarillas:      req.Amarillas,
		Rojas:          req.Rojas,
		Incidencias:    req.Incidencias,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	registros = append(registros, reg)

	if err := s.repo.Seguimiento.SaveAll(ctx, registros); err != nil {
		s.logger.Error("no se pudo guardar la carga semanal", zap.String("jugador_id", req.JugadorID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("semana cargada",
		zap.String("jugador_id", req.JugadorID),
		zap.String("week_start", planilla.FormatFecha(inicio)))
	return toRegistroResponse(&reg), nil
}

// ────────────────────── List ──────────────────────

func (s *seguimientoService) List(ctx context.Context) ([]dto.RegistroResponse, error) {
	registros, err := s.repo.Seguimiento.List(ctx)
	if err != nil {
		s.logger.Error("no se pudo listar la hoja de seguimiento", zap.Error(err))
		return nil, err
	}
	return toRegistroResponses(registros), nil
}

// ────────────────────── ListByJugador ──────────────────────

// ListByJugador historial de un jugador, de la semana más reciente a la
// más vieja.
func (s *seguimientoService) ListByJugador(ctx context.Context, jugadorID string) ([]dto.RegistroResponse, error) {
	registros, err := s.repo.Seguimiento.ListByJugador(ctx, jugadorID)
	if err != nil {
		s.logger.Error("no se pudo listar el seguimiento del jugador", zap.String("jugador_id", jugadorID), zap.Error(err))
		return nil, err
	}
	sort.Slice(registros, func(a, b int) bool {
		return registros[a].WeekStart.After(registros[b].WeekStart)
	})
	return toRegistroResponses(registros), nil
}

// ────────────────────── Reemplazar ──────────────────────

// Reemplazar pisa la tabla completa con lo editado en la pantalla de
// administración. Conserva los identificadores y el created_at de las
// filas que ya existían; las filas nuevas reciben ambos acá.
func (s *seguimientoService) Reemplazar(ctx context.Context, req *dto.ReemplazarSeguimientoRequest) ([]dto.RegistroResponse, error) {
	existentes, err := s.repo.Seguimiento.List(ctx)
	if err != nil {
		s.logger.Error("no se pudo leer la hoja de seguimiento", zap.Error(err))
		return nil, err
	}
	creadoPor := make(map[string]time.Time, len(existentes))
	for i := range existentes {
		creadoPor[existentes[i].RegistroID] = existentes[i].CreatedAt
	}

	now := time.Now()
	vistos := make(map[string]struct{}, len(req.Registros))
	registros := make([]model.RegistroSemanal, 0, len(req.Registros))
	for i := range req.Registros {
		item := &req.Registros[i]

		fin := planilla.ParseFecha(item.WeekEnd)
		if fin.IsZero() {
			return nil, ErrFechaInvalida
		}
		inicio := planilla.ParseFecha(item.WeekStart)
		if inicio.IsZero() {
			inicio = fin.AddDate(0, 0, -6)
		}

		clave := item.JugadorID + "|" + planilla.FormatFecha(inicio)
		if _, dup := vistos[clave]; dup {
			return nil, ErrSemanaDuplicada
		}
		vistos[clave] = struct{}{}

		reg := model.RegistroSemanal{
			RegistroID:     item.RegistroID,
			JugadorID:      item.JugadorID,
			WeekStart:      inicio,
			WeekEnd:        fin,
			Partidos:       item.Partidos,
			Minutos:        item.Minutos,
			GolesMarcados:  item.GolesMarcados,
			GolesEncajados: item.GolesEncajados,
			Amarillas:      item.Amarillas,
			Rojas:          item.Rojas,
			Incidencias:    item.Incidencias,
			UpdatedAt:      now,
		}
		if reg.RegistroID == "" {
			reg.RegistroID = uuid.NewString()
		}
		if creado, ok := creadoPor[reg.RegistroID]; ok && !creado.IsZero() {
			reg.CreatedAt = creado
		} else {
			reg.CreatedAt = now
		}
		registros = append(registros, reg)
	}

	if err := s.repo.Seguimiento.SaveAll(ctx, registros); err != nil {
		s.logger.Error("no se pudo reemplazar la hoja de seguimiento", zap.Error(err))
		return nil, err
	}

	s.logger.Info("tabla de seguimiento reemplazada", zap.Int("filas", len(registros)))
	return toRegistroResponses(registros), nil
}

// ── conversión a DTO ──

func toRegistroResponse(reg *model.RegistroSemanal) *dto.RegistroResponse {
	return &dto.RegistroResponse{
		RegistroID:     reg.RegistroID,
		JugadorID:      reg.JugadorID,
		WeekStart:      planilla.FormatFecha(reg.WeekStart),
		WeekEnd:        planilla.FormatFecha(reg.WeekEnd),
		Partidos:       reg.Partidos,
		Minutos:        reg.Minutos,
		GolesMarcados:  reg.GolesMarcados,
		GolesEncajados: reg.GolesEncajados,
		Amarillas:      reg.Amarillas,
		Rojas:          reg.Rojas,
		Incidencias:    reg.Incidencias,
		CreatedAt:      planilla.FormatFechaHora(reg.CreatedAt),
		UpdatedAt:      planilla.FormatFechaHora(reg.UpdatedAt),
	}
}

func toRegistroResponses(registros []model.RegistroSemanal) []dto.RegistroResponse {
	result := make([]dto.RegistroResponse, 0, len(registros))
	for i := range registros {
		result = append(result, *toRegistroResponse(&registros[i]))
	}
	return result
}
