// Package semana calcula los límites de la semana de seguimiento.
//
// Conviven dos convenciones históricas de la planilla y ambas se soportan
// como elección de configuración:
//   - "domingo": sólo importa el fin de semana; es el próximo domingo
//     (o la fecha misma si ya es domingo).
//   - "lunes": ventana lunes-domingo; el inicio es el lunes más reciente
//     y el fin es inicio + 6 días.
package semana

import "time"

// Convencion elige cómo se ancla la semana
type Convencion string

const (
	// ConvencionLunes ventana lunes-domingo (convención vigente)
	ConvencionLunes Convencion = "lunes"
	// ConvencionDomingo ancla al domingo (planillas viejas)
	ConvencionDomingo Convencion = "domingo"
)

// Dia trunca un instante a fecha pura en UTC
func Dia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// indiceLunes devuelve el día de la semana con lunes=0 ... domingo=6
func indiceLunes(d time.Time) int {
	return (int(d.Weekday()) + 6) % 7
}

// FinDomingo devuelve el próximo domingo, o la fecha misma si es domingo
func FinDomingo(d time.Time) time.Time {
	d = Dia(d)
	return d.AddDate(0, 0, 6-indiceLunes(d))
}

// InicioLunes devuelve el lunes más reciente (la fecha misma si es lunes)
func InicioLunes(d time.Time) time.Time {
	d = Dia(d)
	return d.AddDate(0, 0, -indiceLunes(d))
}

// Ventana devuelve inicio y fin de la semana que contiene a d según la
// convención elegida. Determinística: misma fecha, misma ventana.
func Ventana(d time.Time, c Convencion) (inicio, fin time.Time) {
	switch c {
	case ConvencionDomingo:
		fin = FinDomingo(d)
		inicio = fin.AddDate(0, 0, -6)
	default:
		inicio = InicioLunes(d)
		fin = inicio.AddDate(0, 0, 6)
	}
	return inicio, fin
}
