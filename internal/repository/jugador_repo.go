package repository

import (
	"context"

	"github.com/datosargentinosjuniors/prestamosaaaj/internal/model"
	"github.com/datosargentinosjuniors/prestamosaaaj/pkg/planilla"
)

const hojaJugadores = "jugadores"

// JugadorRepository acceso a la hoja "jugadores"
type JugadorRepository interface {
	List(ctx context.Context) ([]model.Jugador, error)
	GetByID(ctx context.Context, id string) (*model.Jugador, error)
	// SaveAll sobreescribe la hoja completa con el estado recibido
	SaveAll(ctx context.Context, jugadores []model.Jugador) error
}

// jugadorRepo implementación sobre la planilla
type jugadorRepo struct {
	store *planilla.Store
}

// NewJugadorRepo crea el repositorio de jugadores
func NewJugadorRepo(store *planilla.Store) JugadorRepository {
	return &jugadorRepo{store: store}
}

func (r *jugadorRepo) List(ctx context.Context) ([]model.Jugador, error) {
	tabla, err := r.store.Cargar(ctx, hojaJugadores, model.ColumnasJugadores)
	if err != nil {
		return nil, err
	}

	jugadores := make([]model.Jugador, 0, len(tabla.Filas))
	for i := range tabla.Filas {
		j := decodeJugador(tabla, i)
		if j.JugadorID == "" {
			// fila huérfana dejada por una edición manual de la hoja
			continue
		}
		jugadores = append(jugadores, j)
	}
	return jugadores, nil
}

func (r *jugadorRepo) GetByID(ctx context.Context, id string) (*model.Jugador, error) {
	jugadores, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range jugadores {
		if jugadores[i].JugadorID == id {
			return &jugadores[i], nil
		}
	}
	return nil, ErrNoEncontrado
}

func (r *jugadorRepo) SaveAll(ctx context.Context, jugadores []model.Jugador) error {
	filas := make([][]string, 0, len(jugadores))
	for i := range jugadores {
		filas = append(filas, encodeJugador(&jugadores[i]))
	}
	return r.store.Guardar(ctx, hojaJugadores, model.ColumnasJugadores, filas)
}

// ── codificación fila ↔ struct ──

func decodeJugador(t *planilla.Tabla, i int) model.Jugador {
	return model.Jugador{
		JugadorID:        t.Valor(i, "jugador_id"),
		Nombre:           t.Valor(i, "nombre"),
		Puesto:           t.Valor(i, "puesto"),
		FechaNacimiento:  planilla.ParseFecha(t.Valor(i, "fecha_nacimiento")),
		PaisPrestamo:     t.Valor(i, "pais_prestamo"),
		DivisionPrestamo: t.Valor(i, "division_prestamo"),
		ClubPrestamo:     t.Valor(i, "club_prestamo"),
		OpcionCompra:     planilla.ParseBool(t.Valor(i, "opcion_compra")),
		OpcionRepesca:    planilla.ParseBool(t.Valor(i, "opcion_repesca")),
		FechaRetorno:     planilla.ParseFecha(t.Valor(i, "fecha_retorno")),
		FinContrato:      planilla.ParseFecha(t.Valor(i, "fin_contrato_aaaj")),
		Estado:           model.EstadoJugador(t.Valor(i, "estado")),
		Observaciones:    t.Valor(i, "observaciones"),
		CreatedAt:        planilla.ParseFechaHora(t.Valor(i, "created_at")),
		UpdatedAt:        planilla.ParseFechaHora(t.Valor(i, "updated_at")),
	}
}

func encodeJugador(j *model.Jugador) []string {
	return []string{
		j.JugadorID,
		j.Nombre,
		j.Puesto,
		planilla.FormatFecha(j.FechaNacimiento),
		j.PaisPrestamo,
		j.DivisionPrestamo,
		j.ClubPrestamo,
		planilla.FormatBool(j.OpcionCompra),
		planilla.FormatBool(j.OpcionRepesca),
		planilla.FormatFecha(j.FechaRetorno),
		planilla.FormatFecha(j.FinContrato),
		string(j.Estado),
		j.Observaciones,
		planilla.FormatFechaHora(j.CreatedAt),
		planilla.FormatFechaHora(j.UpdatedAt),
	}
}
