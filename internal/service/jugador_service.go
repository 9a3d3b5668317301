package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/datosargentinosjuniors/prestamosaaaj/internal/dto"
	"github.com/datosargentinosjuniors/prestamosaaaj/internal/model"
	"github.com/datosargentinosjuniors/prestamosaaaj/internal/repository"
	"github.com/datosargentinosjuniors/prestamosaaaj/pkg/planilla"
)

// ── módulo jugadores — errores de negocio ──

var (
	ErrJugadorNoEncontrado = errors.New("el jugador no existe")
	ErrNombreVacio         = errors.New("el nombre del jugador no puede estar vacío")
	ErrPuestoInvalido      = errors.New("el puesto no pertenece a la lista de puestos")
	ErrDivisionInvalida    = errors.New("la división no pertenece a la lista de divisiones")
	ErrEstadoInvalido      = errors.New("el estado no pertenece al ciclo de vida del préstamo")
)

// JugadorService negocio del plantel a préstamo
type JugadorService interface {
	Crear(ctx context.Context, req *dto.CreateJugadorRequest) (*dto.JugadorResponse, error)
	GetByID(ctx context.Context, id string) (*dto.JugadorResponse, error)
	List(ctx context.Context, req *dto.JugadorListRequest) ([]dto.JugadorResponse, error)
	Actualizar(ctx context.Context, id string, req *dto.UpdateJugadorRequest) (*dto.JugadorResponse, error)
	Baja(ctx context.Context, id string, motivo string) (*dto.JugadorResponse, error)
	Eliminar(ctx context.Context, id string) error
}

type jugadorService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewJugadorService crea el servicio de jugadores
func NewJugadorService(repo *repository.Repository, logger *zap.Logger) JugadorService {
	return &jugadorService{repo: repo, logger: logger}
}

// ────────────────────── Crear ──────────────────────

func (s *jugadorService) Crear(ctx context.Context, req *dto.CreateJugadorRequest) (*dto.JugadorResponse, error) {
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return nil, ErrNombreVacio
	}
	if !model.PuestoValido(req.Puesto) {
		return nil, ErrPuestoInvalido
	}
	if req.DivisionPrestamo != "" && !model.DivisionValida(req.DivisionPrestamo) {
		return nil, ErrDivisionInvalida
	}

	now := time.Now()
	j := model.Jugador{
		JugadorID:        uuid.NewString(),
		Nombre:           nombre,
		Puesto:           req.Puesto,
		FechaNacimiento:  planilla.ParseFecha(req.FechaNacimiento),
		PaisPrestamo:     strings.TrimSpace(req.PaisPrestamo),
		DivisionPrestamo: req.DivisionPrestamo,
		ClubPrestamo:     strings.TrimSpace(req.ClubPrestamo),
		OpcionCompra:     req.OpcionCompra,
		OpcionRepesca:    req.OpcionRepesca,
		FechaRetorno:     planilla.ParseFecha(req.FechaRetorno),
		FinContrato:      planilla.ParseFecha(req.FinContrato),
		Estado:           model.EstadoActivo,
		Observaciones:    req.Observaciones,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	jugadores, err := s.repo.Jugador.List(ctx)
	if err != nil {
		s.logger.Error("no se pudo leer la hoja de jugadores", zap.Error(err))
		return nil, err
	}
	jugadores = append(jugadores, j)

	if err := s.repo.Jugador.SaveAll(ctx, jugadores); err != nil {
		s.logger.Error("no se pudo guardar el alta del jugador", zap.String("jugador_id", j.JugadorID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("jugador dado de alta", zap.String("jugador_id", j.JugadorID), zap.String("nombre", j.Nombre))
	return toJugadorResponse(&j), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *jugadorService) GetByID(ctx context.Context, id string) (*dto.JugadorResponse, error) {
	j, err := s.repo.Jugador.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoEncontrado) {
			return nil, ErrJugadorNoEncontrado
		}
		s.logger.Error("no se pudo leer el jugador", zap.String("jugador_id", id), zap.Error(err))
		return nil, err
	}
	return toJugadorResponse(j), nil
}

// ────────────────────── List ──────────────────────

func (s *jugadorService) List(ctx context.Context, req *dto.JugadorListRequest) ([]dto.JugadorResponse, error) {
	jugadores, err := s.repo.Jugador.List(ctx)
	if err != nil {
		s.logger.Error("no se pudo listar la hoja de jugadores", zap.Error(err))
		return nil, err
	}

	result := make([]dto.JugadorResponse, 0, len(jugadores))
	for i := range jugadores {
		j := &jugadores[i]
		if req.Estado != "" && string(j.Estado) != req.Estado {
			continue
		}
		if req.Puesto != "" && j.Puesto != req.Puesto {
			continue
		}
		if req.Pais != "" && !strings.EqualFold(j.PaisPrestamo, req.Pais) {
			continue
		}
		result = append(result, *toJugadorResponse(j))
	}
	return result, nil
}

// ────────────────────── Actualizar ──────────────────────

func (s *jugadorService) Actualizar(ctx context.Context, id string, req *dto.UpdateJugadorRequest) (*dto.JugadorResponse, error) {
	jugadores, err := s.repo.Jugador.List(ctx)
	if err != nil {
		s.logger.Error("no se pudo leer la hoja de jugadores", zap.Error(err))
		return nil, err
	}

	idx := -1
	for i := range jugadores {
		if jugadores[i].JugadorID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrJugadorNoEncontrado
	}

	j := &jugadores[idx]
	if req.Nombre != nil {
		nombre := strings.TrimSpace(*req.Nombre)
		if nombre == "" {
			return nil, ErrNombreVacio
		}
		j.Nombre = nombre
	}
	if req.Puesto != nil {
		if !model.PuestoValido(*req.Puesto) {
			return nil, ErrPuestoInvalido
		}
		j.Puesto = *req.Puesto
	}
	if req.FechaNacimiento != nil {
		j.FechaNacimiento = planilla.ParseFecha(*req.FechaNacimiento)
	}
	if req.PaisPrestamo != nil {
		j.PaisPrestamo = strings.TrimSpace(*req.PaisPrestamo)
	}
	if req.DivisionPrestamo != nil {
		if *req.DivisionPrestamo != "" && !model.DivisionValida(*req.DivisionPrestamo) {
			return nil, ErrDivisionInvalida
		}
		j.DivisionPrestamo = *req.DivisionPrestamo
	}
	if req.ClubPrestamo != nil {
		j.ClubPrestamo = strings.TrimSpace(*req.ClubPrestamo)
	}
	if req.OpcionCompra != nil {
		j.OpcionCompra = *req.OpcionCompra
	}
	if req.OpcionRepesca != nil {
		j.OpcionRepesca = *req.OpcionRepesca
	}
	if req.FechaRetorno != nil {
		j.FechaRetorno = planilla.ParseFecha(*req.FechaRetorno)
	}
	if req.FinContrato != nil {
		j.FinContrato = planilla.ParseFecha(*req.FinContrato)
	}
	if req.Estado != nil {
		if !model.EstadoValido(*req.Estado) {
			return nil, ErrEstadoInvalido
		}
		j.Estado = model.EstadoJugador(*req.Estado)
	}
	if req.Observaciones != nil {
		j.Observaciones = *req.Observaciones
	}
	j.UpdatedAt = time.Now()

	if err := s.repo.Jugador.SaveAll(ctx, jugadores); err != nil {
		s.logger.Error("no se pudo guardar la edición del jugador", zap.String("jugador_id", id), zap.Error(err))
		return nil, err
	}

	return toJugadorResponse(j), nil
}

// ────────────────────── Baja ──────────────────────

// Baja rescinde el préstamo sin borrar historia: cambia el estado y deja
// el motivo asentado en observaciones.
func (s *jugadorService) Baja(ctx context.Context, id string, motivo string) (*dto.JugadorResponse, error) {
	jugadores, err := s.repo.Jugador.List(ctx)
	if err != nil {
		s.logger.Error("no se pudo leer la hoja de jugadores", zap.Error(err))
		return nil, err
	}

	idx := -1
	for i := range jugadores {
		if jugadores[i].JugadorID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrJugadorNoEncontrado
	}

	j := &jugadores[idx]
	j.Estado = model.EstadoRescindido
	if motivo = strings.TrimSpace(motivo); motivo != "" {
		nota := fmt.Sprintf("[Baja] %s", motivo)
		if j.Observaciones != "" {
			j.Observaciones += "\n" + nota
		} else {
			j.Observaciones = nota
		}
	}
	j.UpdatedAt = time.Now()

	if err := s.repo.Jugador.SaveAll(ctx, jugadores); err != nil {
		s.logger.Error("no se pudo guardar la baja del jugador", zap.String("jugador_id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("préstamo rescindido", zap.String("jugador_id", id))
	return toJugadorResponse(j), nil
}

// ────────────────────── Eliminar ──────────────────────

// Eliminar borra al jugador en forma definitiva y arrastra su seguimiento
// y sus reportes. No hay vuelta atrás; para un cierre normal usar Baja.
func (s *jugadorService) Eliminar(ctx context.Context, id string) error {
	jugadores, err := s.repo.Jugador.List(ctx)
	if err != nil {
		s.logger.Error("no se pudo leer la hoja de jugadores", zap.Error(err))
		return err
	}

	restantes := make([]model.Jugador, 0, len(jugadores))
	encontrado := false
	for _, j := range jugadores {
		if j.JugadorID == id {
			encontrado = true
			continue
		}
		restantes = append(restantes, j)
	}
	if !encontrado {
		return ErrJugadorNoEncontrado
	}

	registros, err := s.repo.Seguimiento.List(ctx)
	if err != nil {
		s.logger.Error("no se pudo leer la hoja de seguimiento", zap.Error(err))
		return err
	}
	regRestantes := make([]model.RegistroSemanal, 0, len(registros))
	for _, r := range registros {
		if r.JugadorID != id {
			regRestantes = append(regRestantes, r)
		}
	}

	reportes, err := s.repo.Reporte.List(ctx)
	if err != nil {
		s.logger.Error("no se pudo leer la hoja de reportes", zap.Error(err))
		return err
	}
	repRestantes := make([]model.Reporte, 0, len(reportes))
	for _, r := range reportes {
		if r.JugadorID != id {
			repRestantes = append(repRestantes, r)
		}
	}

	if err := s.repo.Jugador.SaveAll(ctx, restantes); err != nil {
		s.logger.Error("no se pudo guardar la hoja de jugadores", zap.Error(err))
		return err
	}
	if err := s.repo.Seguimiento.SaveAll(ctx, regRestantes); err != nil {
		s.logger.Error("no se pudo guardar la hoja de seguimiento", zap.Error(err))
		return err
	}
	if err := s.repo.Reporte.SaveAll(ctx, repRestantes); err != nil {
		s.logger.Error("no se pudo guardar la hoja de reportes", zap.Error(err))
		return err
	}

	s.logger.Info("jugador eliminado con su historial", zap.String("jugador_id", id))
	return nil
}

// ── conversión a DTO ──

func toJugadorResponse(j *model.Jugador) *dto.JugadorResponse {
	return &dto.JugadorResponse{
		JugadorID:        j.JugadorID,
		Nombre:           j.Nombre,
		Puesto:           j.Puesto,
		FechaNacimiento:  planilla.FormatFecha(j.FechaNacimiento),
		PaisPrestamo:     j.PaisPrestamo,
		DivisionPrestamo: j.DivisionPrestamo,
		ClubPrestamo:     j.ClubPrestamo,
		OpcionCompra:     j.OpcionCompra,
		OpcionRepesca:    j.OpcionRepesca,
		FechaRetorno:     planilla.FormatFecha(j.FechaRetorno),
		FinContrato:      planilla.FormatFecha(j.FinContrato),
		Estado:           string(j.Estado),
		Observaciones:    j.Observaciones,
		EsArquero:        j.EsArquero(),
		CreatedAt:        planilla.FormatFechaHora(j.CreatedAt),
		UpdatedAt:        planilla.FormatFechaHora(j.UpdatedAt),
	}
}
