package model

import "time"

// ColumnasSeguimiento esquema de la hoja "seguimiento"
var ColumnasSeguimiento = []string{
	"registro_id",
	"jugador_id",
	"week_start",
	"week_end",
	"partidos",
	"minutos",
	"goles_marcados",
	"goles_encajados",
	"amarillas",
	"rojas",
	"incidencias",
	"created_at",
	"updated_at",
}

// RegistroSemanal una semana de estadísticas de un jugador — hoja "seguimiento".
// Referencia al jugador por identificador, nunca por puntero: la relación es
// débil y se resuelve por lookup.
type RegistroSemanal struct {
	RegistroID     string
	JugadorID      string
	WeekStart      time.Time
	WeekEnd        time.Time
	Partidos       int
	Minutos        int
	GolesMarcados  int
	GolesEncajados int
	Amarillas      int
	Rojas          int
	Incidencias    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
