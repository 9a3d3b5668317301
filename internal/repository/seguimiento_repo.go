package repository

import (
	"context"

	"github.com/datosargentinosjuniors/prestamosaaaj/internal/model"
	"github.com/datosargentinosjuniors/prestamosaaaj/pkg/planilla"
)

const hojaSeguimiento = "seguimiento"

// SeguimientoRepository acceso a la hoja "seguimiento"
type SeguimientoRepository interface {
	List(ctx context.Context) ([]model.RegistroSemanal, error)
	ListByJugador(ctx context.Context, jugadorID string) ([]model.RegistroSemanal, error)
	SaveAll(ctx context.Context, registros []model.RegistroSemanal) error
}

type seguimientoRepo struct {
	store *planilla.Store
}

// NewSeguimientoRepo crea el repositorio de seguimiento semanal
func NewSeguimientoRepo(store *planilla.Store) SeguimientoRepository {
	return &seguimientoRepo{store: store}
}

func (r *seguimientoRepo) List(ctx context.Context) ([]model.RegistroSemanal, error) {
	tabla, err := r.store.Cargar(ctx, hojaSeguimiento, model.ColumnasSeguimiento)
	if err != nil {
		return nil, err
	}

	registros := make([]model.RegistroSemanal, 0, len(tabla.Filas))
	for i := range tabla.Filas {
		reg := decodeRegistro(tabla, i)
		if reg.RegistroID == "" && reg.JugadorID == "" {
			continue
		}
		registros = append(registros, reg)
	}
	return registros, nil
}

func (r *seguimientoRepo) ListByJugador(ctx context.Context, jugadorID string) ([]model.RegistroSemanal, error) {
	registros, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	filtrados := make([]model.RegistroSemanal, 0, len(registros))
	for _, reg := range registros {
		if reg.JugadorID == jugadorID {
			filtrados = append(filtrados, reg)
		}
	}
	return filtrados, nil
}

func (r *seguimientoRepo) SaveAll(ctx context.Context, registros []model.RegistroSemanal) error {
	filas := make([][]string, 0, len(registros))
	for i := range registros {
		filas = append(filas, encodeRegistro(&registros[i]))
	}
	return r.store.Guardar(ctx, hojaSeguimiento, model.ColumnasSeguimiento, filas)
}

func decodeRegistro(t *planilla.Tabla, i int) model.RegistroSemanal {
	reg := model.RegistroSemanal{
		RegistroID:     t.Valor(i, "registro_id"),
		JugadorID:      t.Valor(i, "jugador_id"),
		WeekStart:      planilla.ParseFecha(t.Valor(i, "week_start")),
		WeekEnd:        planilla.ParseFecha(t.Valor(i, "week_end")),
		Partidos:       planilla.ParseEntero(t.Valor(i, "partidos")),
		Minutos:        planilla.ParseEntero(t.Valor(i, "minutos")),
		GolesMarcados:  planilla.ParseEntero(t.Valor(i, "goles_marcados")),
		GolesEncajados: planilla.ParseEntero(t.Valor(i, "goles_encajados")),
		Amarillas:      planilla.ParseEntero(t.Valor(i, "amarillas")),
		Rojas:          planilla.ParseEntero(t.Valor(i, "rojas")),
		Incidencias:    t.Valor(i, "incidencias"),
		CreatedAt:      planilla.ParseFechaHora(t.Valor(i, "created_at")),
		UpdatedAt:      planilla.ParseFechaHora(t.Valor(i, "updated_at")),
	}
	// las filas anteriores a la columna week_start sólo tienen week_end
	if reg.WeekStart.IsZero() && !reg.WeekEnd.IsZero() {
		reg.WeekStart = reg.WeekEnd.AddDate(0, 0, -6)
	}
	return reg
}

func encodeRegistro(reg *model.RegistroSemanal) []string {
	return []string{
		reg.RegistroID,
		reg.JugadorID,
		planilla.FormatFecha(reg.WeekStart),
		planilla.FormatFecha(reg.WeekEnd),
		planilla.FormatEntero(reg.Partidos),
		planilla.FormatEntero(reg.Minutos),
		planilla.FormatEntero(reg.GolesMarcados),
		planilla.FormatEntero(reg.GolesEncajados),
		planilla.FormatEntero(reg.Amarillas),
		planilla.FormatEntero(reg.Rojas),
		reg.Incidencias,
		planilla.FormatFechaHora(reg.CreatedAt),
		planilla.FormatFechaHora(reg.UpdatedAt),
	}
}
