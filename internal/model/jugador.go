package model

import (
	"strings"
	"time"
)

// EstadoJugador ciclo de vida del préstamo
type EstadoJugador string

const (
	EstadoActivo     EstadoJugador = "Activo"
	EstadoFinalizado EstadoJugador = "Finalizado"
	EstadoRescindido EstadoJugador = "Rescindido"
)

// Puestos enumeración cerrada de puestos
var Puestos = []string{
	"Arquero",
	"Defensor central",
	"Lateral",
	"Mediocampista defensivo",
	"Mediocampista mixto",
	"Mediocampista ofensivo",
	"Extremo",
	"Delantero",
}

// Divisiones divisiones posibles del club de destino
var Divisiones = []string{"1° división", "2° división", "3° división"}

// ColumnasJugadores esquema de la hoja "jugadores"
var ColumnasJugadores = []string{
	"jugador_id",
	"nombre",
	"puesto",
	"fecha_nacimiento",
	"pais_prestamo",
	"division_prestamo",
	"club_prestamo",
	"opcion_compra",
	"opcion_repesca",
	"fecha_retorno",
	"fin_contrato_aaaj",
	"estado",
	"observaciones",
	"created_at",
	"updated_at",
}

// Jugador un jugador cedido a préstamo — hoja "jugadores"
type Jugador struct {
	JugadorID        string
	Nombre           string
	Puesto           string
	FechaNacimiento  time.Time
	PaisPrestamo     string
	DivisionPrestamo string
	ClubPrestamo     string
	OpcionCompra     bool
	OpcionRepesca    bool
	FechaRetorno     time.Time
	FinContrato      time.Time
	Estado           EstadoJugador
	Observaciones    string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// EsArquero decide si el puesto corresponde a un arquero; se usa para
// elegir qué estadística de goles tiene sentido mostrar.
func (j *Jugador) EsArquero() bool {
	p := strings.ToLower(strings.TrimSpace(j.Puesto))
	if strings.Contains(p, "arquero") {
		return true
	}
	switch p {
	case "gk", "goalkeeper", "portero":
		return true
	}
	return false
}

// PuestoValido valida contra la enumeración cerrada
func PuestoValido(p string) bool {
	for _, v := range Puestos {
		if v == p {
			return true
		}
	}
	return false
}

// DivisionValida valida contra las divisiones conocidas
func DivisionValida(d string) bool {
	for _, v := range Divisiones {
		if v == d {
			return true
		}
	}
	return false
}

// EstadoValido valida el estado del ciclo de vida
func EstadoValido(e string) bool {
	switch EstadoJugador(e) {
	case EstadoActivo, EstadoFinalizado, EstadoRescindido:
		return true
	}
	return false
}
