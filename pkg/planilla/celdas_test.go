package planilla

import (
	"testing"
	"time"
)

func TestParseFecha_Formatos(t *testing.T) {
	esperada := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)

	casos := []string{
		"2024-03-04",
		"04/03/2024",
		"04-03-2024",
		"2024-03-04 18:30:00",
		"  2024-03-04  ",
	}
	for _, c := range casos {
		if got := ParseFecha(c); !got.Equal(esperada) {
			t.Errorf("ParseFecha(%q) = %v, se esperaba %v", c, got, esperada)
		}
	}
}

func TestParseFecha_SinValor(t *testing.T) {
	casos := []string{"", "   ", "nat", "NaT", "none", "None", "no es una fecha", "32/13/2024"}
	for _, c := range casos {
		if got := ParseFecha(c); !got.IsZero() {
			t.Errorf("ParseFecha(%q) = %v, se esperaba el marcador sin fecha", c, got)
		}
	}
}

func TestParseFecha_Idempotente(t *testing.T) {
	// normalizar lo ya normalizado es un no-op
	original := ParseFecha("04/03/2024")
	segunda := ParseFecha(FormatFecha(original))
	if !segunda.Equal(original) {
		t.Errorf("la segunda pasada cambió la fecha: %v vs %v", segunda, original)
	}

	if FormatFecha(time.Time{}) != "" {
		t.Error("el marcador sin fecha debe serializar como celda vacía")
	}
}

func TestParseFechaHora_RoundTrip(t *testing.T) {
	ts := time.Date(2024, time.March, 4, 18, 30, 15, 0, time.UTC)
	if got := ParseFechaHora(FormatFechaHora(ts)); !got.Equal(ts) {
		t.Errorf("round-trip de timestamp falló: %v vs %v", got, ts)
	}
	// una fecha pura también se acepta como timestamp
	if got := ParseFechaHora("2024-03-04"); got.IsZero() {
		t.Error("una fecha pura debería aceptarse como timestamp")
	}
}

func TestParseEntero(t *testing.T) {
	casos := map[string]int{
		"7":      7,
		" 90 ":   90,
		"3.0":    3,
		"":       0,
		"basura": 0,
		"-2":     -2,
	}
	for in, want := range casos {
		if got := ParseEntero(in); got != want {
			t.Errorf("ParseEntero(%q) = %d, se esperaba %d", in, got, want)
		}
	}
}

func TestParseBool(t *testing.T) {
	verdaderos := []string{"true", "TRUE", "1", "si", "Sí", "SÍ", " si "}
	for _, c := range verdaderos {
		if !ParseBool(c) {
			t.Errorf("ParseBool(%q) debería ser true", c)
		}
	}
	falsos := []string{"false", "0", "no", "", "cualquier cosa"}
	for _, c := range falsos {
		if ParseBool(c) {
			t.Errorf("ParseBool(%q) debería ser false", c)
		}
	}

	// idempotencia sobre la forma serializada
	if !ParseBool(FormatBool(true)) || ParseBool(FormatBool(false)) {
		t.Error("ParseBool(FormatBool(x)) debe devolver x")
	}
}
