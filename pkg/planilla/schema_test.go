package planilla

import (
	"reflect"
	"testing"
)

func TestReconciliar_PreservaValoresCompartidos(t *testing.T) {
	header := []string{"nombre", "club", "puesto"}
	filas := [][]string{
		{"Ana", "Club X", "Arquero"},
		{"Juan", "Club Y", "Delantero"},
	}
	requeridas := []string{"jugador_id", "nombre", "puesto"}

	resultado := Reconciliar(header, filas, requeridas)

	esperado := [][]string{
		{"", "Ana", "Arquero"},
		{"", "Juan", "Delantero"},
	}
	if !reflect.DeepEqual(resultado, esperado) {
		t.Errorf("se esperaba %v, se obtuvo %v", esperado, resultado)
	}
}

func TestReconciliar_ReordenaColumnas(t *testing.T) {
	header := []string{"puesto", "nombre"}
	filas := [][]string{{"Arquero", "Ana"}}
	requeridas := []string{"nombre", "puesto"}

	resultado := Reconciliar(header, filas, requeridas)
	if resultado[0][0] != "Ana" || resultado[0][1] != "Arquero" {
		t.Errorf("reordenamiento incorrecto: %v", resultado[0])
	}
}

func TestReconciliar_DescartaColumnasQuitadas(t *testing.T) {
	header := []string{"nombre", "columna_vieja"}
	filas := [][]string{{"Ana", "dato que se pierde"}}
	requeridas := []string{"nombre"}

	resultado := Reconciliar(header, filas, requeridas)
	if len(resultado[0]) != 1 || resultado[0][0] != "Ana" {
		t.Errorf("se esperaba sólo la columna nombre: %v", resultado[0])
	}
}

func TestReconciliar_FilasCortas(t *testing.T) {
	// excelize recorta celdas vacías al final: la fila puede ser más corta
	// que el header
	header := []string{"nombre", "club", "observaciones"}
	filas := [][]string{{"Ana"}}
	requeridas := []string{"nombre", "club", "observaciones"}

	resultado := Reconciliar(header, filas, requeridas)
	esperado := []string{"Ana", "", ""}
	if !reflect.DeepEqual(resultado[0], esperado) {
		t.Errorf("se esperaba %v, se obtuvo %v", esperado, resultado[0])
	}
}

func TestMismoHeader(t *testing.T) {
	if !MismoHeader([]string{"a", "b"}, []string{"a", "b"}) {
		t.Error("headers idénticos deberían coincidir")
	}
	if MismoHeader([]string{"b", "a"}, []string{"a", "b"}) {
		t.Error("el orden importa")
	}
	if MismoHeader([]string{"a"}, []string{"a", "b"}) {
		t.Error("largos distintos no coinciden")
	}
}
