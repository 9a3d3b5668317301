package service

import (
	"context"

	"github.com/datosargentinosjuniors/prestamosaaaj/internal/model"
	"github.com/datosargentinosjuniors/prestamosaaaj/internal/repository"
)

// ── Mock JugadorRepository ──

type mockJugadorRepo struct {
	jugadores []model.Jugador
}

func newMockJugadorRepo() *mockJugadorRepo {
	return &mockJugadorRepo{}
}

func (m *mockJugadorRepo) List(_ context.Context) ([]model.Jugador, error) {
	out := make([]model.Jugador, len(m.jugadores))
	copy(out, m.jugadores)
	return out, nil
}

func (m *mockJugadorRepo) GetByID(_ context.Context, id string) (*model.Jugador, error) {
	for i := range m.jugadores {
		if m.jugadores[i].JugadorID == id {
			j := m.jugadores[i]
			return &j, nil
		}
	}
	return nil, repository.ErrNoEncontrado
}

func (m *mockJugadorRepo) SaveAll(_ context.Context, jugadores []model.Jugador) error {
	m.jugadores = make([]model.Jugador, len(jugadores))
	copy(m.jugadores, jugadores)
	return nil
}

// ── Mock SeguimientoRepository ──

type mockSeguimientoRepo struct {
	registros []model.RegistroSemanal
}

func newMockSeguimientoRepo() *mockSeguimientoRepo {
	return &mockSeguimientoRepo{}
}

func (m *mockSeguimientoRepo) List(_ context.Context) ([]model.RegistroSemanal, error) {
	out := make([]model.RegistroSemanal, len(m.registros))
	copy(out, m.registros)
	return out, nil
}

func (m *mockSeguimientoRepo) ListByJugador(_ context.Context, jugadorID string) ([]model.RegistroSemanal, error) {
	var out []model.RegistroSemanal
	for _, r := range m.registros {
		if r.JugadorID == jugadorID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockSeguimientoRepo) SaveAll(_ context.Context, registros []model.RegistroSemanal) error {
	m.registros = make([]model.RegistroSemanal, len(registros))
	copy(m.registros, registros)
	return nil
}

// ── Mock ReporteRepository ──

type mockReporteRepo struct {
	reportes []model.Reporte
}

func newMockReporteRepo() *mockReporteRepo {
	return &mockReporteRepo{}
}

func (m *mockReporteRepo) List(_ context.Context) ([]model.Reporte, error) {
	out := make([]model.Reporte, len(m.reportes))
	copy(out, m.reportes)
	return out, nil
}

func (m *mockReporteRepo) ListByJugador(_ context.Context, jugadorID string) ([]model.Reporte, error) {
	var out []model.Reporte
	for _, r := range m.reportes {
		if r.JugadorID == jugadorID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockReporteRepo) SaveAll(_ context.Context, reportes []model.Reporte) error {
	m.reportes = make([]model.Reporte, len(reportes))
	copy(m.reportes, reportes)
	return nil
}

// ── armado común ──

func newMockRepository() (*repository.Repository, *mockJugadorRepo, *mockSeguimientoRepo, *mockReporteRepo) {
	jugadorRepo := newMockJugadorRepo()
	seguimientoRepo := newMockSeguimientoRepo()
	reporteRepo := newMockReporteRepo()
	repo := &repository.Repository{
		Jugador:     jugadorRepo,
		Seguimiento: seguimientoRepo,
		Reporte:     reporteRepo,
	}
	return repo, jugadorRepo, seguimientoRepo, reporteRepo
}
