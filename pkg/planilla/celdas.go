package planilla

import (
	"strconv"
	"strings"
	"time"
)

// Formatos con los que la planilla guarda fechas y timestamps.
const (
	FormatoFecha     = "2006-01-02"
	FormatoFechaHora = "2006-01-02 15:04:05"
)

// formatos aceptados al leer celdas de fecha, en orden de prioridad
var formatosFecha = []string{
	FormatoFecha,
	"02/01/2006",
	"02-01-2006",
}

// formatos de mejor esfuerzo para celdas que traen fecha con hora
var formatosFechaHora = []string{
	FormatoFechaHora,
	time.RFC3339,
	"02/01/2006 15:04:05",
}

// ParseFecha interpreta una celda de fecha con tolerancia: celda vacía,
// "nat", "none" o un valor imposible de interpretar devuelven el tiempo
// cero como marcador explícito de "sin fecha". Nunca falla: el dato
// malformado degrada al marcador, no corta la página.
func ParseFecha(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	switch strings.ToLower(s) {
	case "nat", "none":
		return time.Time{}
	}

	for _, fmt := range formatosFecha {
		if t, err := time.Parse(fmt, s); err == nil {
			return diaUTC(t)
		}
	}
	for _, fmt := range formatosFechaHora {
		if t, err := time.Parse(fmt, s); err == nil {
			return diaUTC(t)
		}
	}
	return time.Time{}
}

// FormatFecha serializa una fecha; el marcador "sin fecha" queda como celda vacía
func FormatFecha(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(FormatoFecha)
}

// ParseFechaHora interpreta un timestamp de auditoría (created_at/updated_at);
// acepta también una fecha pura. Tolerante igual que ParseFecha.
func ParseFechaHora(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, fmt := range formatosFechaHora {
		if t, err := time.Parse(fmt, s); err == nil {
			return t.UTC()
		}
	}
	return ParseFecha(s)
}

// FormatFechaHora serializa un timestamp de auditoría
func FormatFechaHora(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(FormatoFechaHora)
}

// ParseEntero interpreta una celda numérica; vacío o basura valen 0
func ParseEntero(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// las planillas a veces guardan "3.0": segundo intento como float
		f, err2 := strconv.ParseFloat(s, 64)
		if err2 != nil {
			return 0
		}
		return int(f)
	}
	return n
}

// FormatEntero serializa un entero para la planilla
func FormatEntero(n int) string {
	return strconv.Itoa(n)
}

// ParseBool interpreta una celda booleana: true/1/si/sí valen true,
// false/0/no y cualquier otra cosa valen false.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "si", "sí":
		return true
	default:
		return false
	}
}

// FormatBool serializa un booleano para la planilla
func FormatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func diaUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
