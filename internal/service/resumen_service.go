package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/datosargentinosjuniors/prestamosaaaj/internal/dto"
	"github.com/datosargentinosjuniors/prestamosaaaj/internal/model"
	"github.com/datosargentinosjuniors/prestamosaaaj/internal/repository"
	"github.com/datosargentinosjuniors/prestamosaaaj/pkg/planilla"
)

// ── módulo resumen — errores de negocio ──

var ErrSinRegistros = errors.New("todavía no hay registros de seguimiento cargados")

// ResumenService vistas agregadas del seguimiento
type ResumenService interface {
	// TablaAcumulada todas las semanas sumadas por jugador, con filtros y
	// el bloque de totales de lo que quedó en la vista
	TablaAcumulada(ctx context.Context, req *dto.ResumenListRequest) (*dto.ResumenResponse, error)
	// VistaIndividual ficha de un jugador: datos, historial y sus totales
	VistaIndividual(ctx context.Context, jugadorID string) (*dto.VistaIndividualResponse, error)
}

type resumenService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewResumenService crea el servicio de resumen
func NewResumenService(repo *repository.Repository, logger *zap.Logger) ResumenService {
	return &resumenService{repo: repo, logger: logger}
}

// acumulado totales de un jugador sobre todo su seguimiento
type acumulado struct {
	semanas        int
	partidos       int
	minutos        int
	goles          int
	golesEncajados int
	amarillas      int
	rojas          int
	ultimaSemana   time.Time
}

func acumularPorJugador(registros []model.RegistroSemanal) map[string]*acumulado {
	porJugador := make(map[string]*acumulado)
	for i := range registros {
		reg := &registros[i]
		acc := porJugador[reg.JugadorID]
		if acc == nil {
			acc = &acumulado{}
			porJugador[reg.JugadorID] = acc
		}
		acc.semanas++
		acc.partidos += reg.Partidos
		acc.minutos += reg.Minutos
		acc.goles += reg.GolesMarcados
		acc.golesEncajados += reg.GolesEncajados
		acc.amarillas += reg.Amarillas
		acc.rojas += reg.Rojas
		if reg.WeekEnd.After(acc.ultimaSemana) {
			acc.ultimaSemana = reg.WeekEnd
		}
	}
	return porJugador
}

func toResumenFila(j *model.Jugador, acc *acumulado) dto.ResumenFila {
	fila := dto.ResumenFila{
		JugadorID:    j.JugadorID,
		Nombre:       j.Nombre,
		Puesto:       j.Puesto,
		ClubPrestamo: j.ClubPrestamo,
		PaisPrestamo: j.PaisPrestamo,
		Estado:       string(j.Estado),
		EsArquero:    j.EsArquero(),
	}
	if acc != nil {
		fila.Semanas = acc.semanas
		fila.PartidosTotal = acc.partidos
		fila.MinutosTotal = acc.minutos
		fila.GolesTotal = acc.goles
		fila.GolesEncajadosTotal = acc.golesEncajados
		fila.AmarillasTotal = acc.amarillas
		fila.RojasTotal = acc.rojas
		fila.UltimaSemana = planilla.FormatFecha(acc.ultimaSemana)
	}
	return fila
}

// ────────────────────── TablaAcumulada ──────────────────────

func (s *resumenService) TablaAcumulada(ctx context.Context, req *dto.ResumenListRequest) (*dto.ResumenResponse, error) {
	jugadores, err := s.repo.Jugador.List(ctx)
	if err != nil {
		s.logger.Error("no se pudo leer la hoja de jugadores", zap.Error(err))
		return nil, err
	}
	registros, err := s.repo.Seguimiento.List(ctx)
	if err != nil {
		s.logger.Error("no se pudo leer la hoja de seguimiento", zap.Error(err))
		return nil, err
	}
	if len(registros) == 0 {
		return nil, ErrSinRegistros
	}

	porJugador := acumularPorJugador(registros)

	filas := make([]dto.ResumenFila, 0, len(jugadores))
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
		fila := toResumenFila(j, porJugador[j.JugadorID])
		if req.SoloConMinutos && fila.MinutosTotal == 0 {
			continue
		}
		filas = append(filas, fila)
	}

	// más minutos primero; a igual minutos, más partidos; después el nombre
	sort.SliceStable(filas, func(a, b int) bool {
		if filas[a].MinutosTotal != filas[b].MinutosTotal {
			return filas[a].MinutosTotal > filas[b].MinutosTotal
		}
		if filas[a].PartidosTotal != filas[b].PartidosTotal {
			return filas[a].PartidosTotal > filas[b].PartidosTotal
		}
		return filas[a].Nombre < filas[b].Nombre
	})

	totales := dto.ResumenTotales{Jugadores: len(filas)}
	for i := range filas {
		totales.Minutos += filas[i].MinutosTotal
		totales.Partidos += filas[i].PartidosTotal
		totales.Rojas += filas[i].RojasTotal
	}

	return &dto.ResumenResponse{Filas: filas, Totales: totales}, nil
}

// ────────────────────── VistaIndividual ──────────────────────

func (s *resumenService) VistaIndividual(ctx context.Context, jugadorID string) (*dto.VistaIndividualResponse, error) {
	j, err := s.repo.Jugador.GetByID(ctx, jugadorID)
	if err != nil {
		if errors.Is(err, repository.ErrNoEncontrado) {
			return nil, ErrJugadorNoEncontrado
		}
		s.logger.Error("no se pudo leer el jugador", zap.String("jugador_id", jugadorID), zap.Error(err))
		return nil, err
	}

	registros, err := s.repo.Seguimiento.ListByJugador(ctx, jugadorID)
	if err != nil {
		s.logger.Error("no se pudo listar el seguimiento del jugador", zap.String("jugador_id", jugadorID), zap.Error(err))
		return nil, err
	}
	sort.Slice(registros, func(a, b int) bool {
		return registros[a].WeekStart.After(registros[b].WeekStart)
	})

	var acc *acumulado
	if len(registros) > 0 {
		acc = acumularPorJugador(registros)[jugadorID]
	}

	return &dto.VistaIndividualResponse{
		Jugador:   *toJugadorResponse(j),
		Historial: toRegistroResponses(registros),
		Totales:   toResumenFila(j, acc),
	}, nil
}
