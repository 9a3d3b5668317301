package repository

import (
	"errors"

	"github.com/datosargentinosjuniors/prestamosaaaj/pkg/planilla"
)

// ErrNoEncontrado no existe una fila con el identificador pedido
var ErrNoEncontrado = errors.New("registro no encontrado")

// Repository punto de entrada agregado de todos los repositorios
type Repository struct {
	Jugador     JugadorRepository
	Seguimiento SeguimientoRepository
	Reporte     ReporteRepository
}

// NewRepository crea el agregado sobre el store de la planilla
func NewRepository(store *planilla.Store) *Repository {
	return &Repository{
		Jugador:     NewJugadorRepo(store),
		Seguimiento: NewSeguimientoRepo(store),
		Reporte:     NewReporteRepo(store),
	}
}
