package planilla

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/datosargentinosjuniors/prestamosaaaj/config"
	"github.com/datosargentinosjuniors/prestamosaaaj/pkg/cache"
)

var columnasPrueba = []string{"id", "nombre", "valor"}

func crearWorkbook(t *testing.T) string {
	t.Helper()
	ruta := filepath.Join(t.TempDir(), "prestamos.xlsx")
	f := excelize.NewFile()
	if err := f.SaveAs(ruta); err != nil {
		t.Fatalf("no se pudo crear el workbook de prueba: %v", err)
	}
	f.Close()
	return ruta
}

func abrirStore(t *testing.T, ruta string, ttl time.Duration) *Store {
	t.Helper()
	cfg := &config.PlanillaConfig{Path: ruta, CacheTTL: ttl}
	s, err := Abrir(cfg, cache.NewMemory(), zap.NewNop())
	if err != nil {
		t.Fatalf("Abrir debería funcionar: %v", err)
	}
	return s
}

func TestAbrir_RutaInexistente(t *testing.T) {
	cfg := &config.PlanillaConfig{Path: filepath.Join(t.TempDir(), "no-existe.xlsx")}
	_, err := Abrir(cfg, cache.NewMemory(), zap.NewNop())
	if err == nil {
		t.Fatal("abrir una planilla inexistente debería fallar con detalle accionable")
	}
}

func TestCargar_CreaHojaConEncabezado(t *testing.T) {
	s := abrirStore(t, crearWorkbook(t), 0)
	ctx := context.Background()

	tabla, err := s.Cargar(ctx, "jugadores", columnasPrueba)
	if err != nil {
		t.Fatalf("Cargar debería funcionar: %v", err)
	}
	if !MismoHeader(tabla.Columnas, columnasPrueba) {
		t.Errorf("columnas inesperadas: %v", tabla.Columnas)
	}
	if len(tabla.Filas) != 0 {
		t.Errorf("una hoja nueva no debería tener filas: %v", tabla.Filas)
	}
}

func TestGuardarYCargar_RoundTrip(t *testing.T) {
	s := abrirStore(t, crearWorkbook(t), 0)
	ctx := context.Background()

	filas := [][]string{
		{"1", "Ana", "10"},
		{"2", "Juan", "20"},
	}
	if err := s.Guardar(ctx, "jugadores", columnasPrueba, filas); err != nil {
		t.Fatalf("Guardar debería funcionar: %v", err)
	}

	tabla, err := s.Cargar(ctx, "jugadores", columnasPrueba)
	if err != nil {
		t.Fatalf("Cargar debería funcionar: %v", err)
	}
	if len(tabla.Filas) != 2 {
		t.Fatalf("se esperaban 2 filas, hay %d", len(tabla.Filas))
	}
	if tabla.Valor(0, "nombre") != "Ana" || tabla.Valor(1, "valor") != "20" {
		t.Errorf("valores inesperados: %v", tabla.Filas)
	}
}

func TestGuardar_SobreescrituraCompleta(t *testing.T) {
	s := abrirStore(t, crearWorkbook(t), 0)
	ctx := context.Background()

	_ = s.Guardar(ctx, "jugadores", columnasPrueba, [][]string{
		{"1", "Ana", "10"},
		{"2", "Juan", "20"},
		{"3", "Luis", "30"},
	})
	// la segunda escritura reemplaza todo, no agrega
	_ = s.Guardar(ctx, "jugadores", columnasPrueba, [][]string{
		{"9", "Marta", "90"},
	})

	tabla, err := s.Cargar(ctx, "jugadores", columnasPrueba)
	if err != nil {
		t.Fatalf("Cargar debería funcionar: %v", err)
	}
	if len(tabla.Filas) != 1 {
		t.Fatalf("se esperaba 1 fila tras la sobreescritura, hay %d", len(tabla.Filas))
	}
	if tabla.Valor(0, "nombre") != "Marta" {
		t.Errorf("fila inesperada: %v", tabla.Filas[0])
	}
}

func TestCargar_ReconciliaEsquemaDerivado(t *testing.T) {
	ruta := crearWorkbook(t)

	// hoja escrita con un esquema viejo: columna extra y sin "valor"
	f, err := excelize.OpenFile(ruta)
	if err != nil {
		t.Fatalf("no se pudo abrir el workbook: %v", err)
	}
	_, _ = f.NewSheet("jugadores")
	_ = f.SetSheetRow("jugadores", "A1", &[]interface{}{"nombre", "columna_vieja", "id"})
	_ = f.SetSheetRow("jugadores", "A2", &[]interface{}{"Ana", "se pierde", "1"})
	if err := f.Save(); err != nil {
		t.Fatalf("no se pudo guardar: %v", err)
	}
	f.Close()

	s := abrirStore(t, ruta, 0)
	tabla, err := s.Cargar(context.Background(), "jugadores", columnasPrueba)
	if err != nil {
		t.Fatalf("Cargar debería funcionar: %v", err)
	}
	if tabla.Valor(0, "id") != "1" || tabla.Valor(0, "nombre") != "Ana" {
		t.Errorf("los valores compartidos deben preservarse: %v", tabla.Filas)
	}
	if tabla.Valor(0, "valor") != "" {
		t.Errorf("la columna nueva debe quedar vacía: %q", tabla.Valor(0, "valor"))
	}

	// la reescritura quedó persistida: una segunda carga ve el esquema nuevo
	tabla2, err := s.Cargar(context.Background(), "jugadores", columnasPrueba)
	if err != nil {
		t.Fatalf("la segunda carga debería funcionar: %v", err)
	}
	if !MismoHeader(tabla2.Columnas, columnasPrueba) {
		t.Errorf("el esquema reconciliado no persistió: %v", tabla2.Columnas)
	}
}

func TestCache_EscrituraInvalida(t *testing.T) {
	s := abrirStore(t, crearWorkbook(t), time.Minute)
	ctx := context.Background()

	_ = s.Guardar(ctx, "jugadores", columnasPrueba, [][]string{{"1", "Ana", "10"}})
	if _, err := s.Cargar(ctx, "jugadores", columnasPrueba); err != nil {
		t.Fatalf("Cargar debería funcionar: %v", err)
	}

	// escribir invalida la caché: la lectura siguiente ve el dato nuevo
	_ = s.Guardar(ctx, "jugadores", columnasPrueba, [][]string{{"1", "Ana María", "10"}})
	tabla, err := s.Cargar(ctx, "jugadores", columnasPrueba)
	if err != nil {
		t.Fatalf("Cargar debería funcionar: %v", err)
	}
	if tabla.Valor(0, "nombre") != "Ana María" {
		t.Errorf("la caché devolvió un estado viejo: %q", tabla.Valor(0, "nombre"))
	}
}
