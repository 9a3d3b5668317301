// Package planilla es el adaptador de persistencia: cada tabla del sistema
// vive como una hoja de un workbook .xlsx, con fila de encabezado y datos
// como texto plano. Las escrituras son siempre de tabla completa (se vacía
// la hoja y se reescribe todo); ante dos escritores concurrentes gana el
// último sin detección de conflicto, una limitación aceptada del diseño.
package planilla

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/datosargentinosjuniors/prestamosaaaj/config"
	"github.com/datosargentinosjuniors/prestamosaaaj/pkg/cache"
)

// Tabla snapshot completo de una hoja: encabezado + filas de texto
type Tabla struct {
	Columnas []string   `json:"columnas"`
	Filas    [][]string `json:"filas"`

	indice map[string]int
}

// Valor devuelve la celda de la fila i bajo la columna nombrada; si la
// columna no existe devuelve cadena vacía.
func (t *Tabla) Valor(i int, columna string) string {
	if t.indice == nil {
		t.indice = make(map[string]int, len(t.Columnas))
		for j, c := range t.Columnas {
			t.indice[c] = j
		}
	}
	j, ok := t.indice[columna]
	if !ok || i < 0 || i >= len(t.Filas) || j >= len(t.Filas[i]) {
		return ""
	}
	return t.Filas[i][j]
}

// Store acceso a la planilla con caché de lectura de corta vida.
// Se construye una sola vez al arrancar y se pasa explícitamente a los
// repositorios; el mutex serializa los accesos dentro del proceso.
type Store struct {
	ruta   string
	ttl    time.Duration
	cache  cache.Cache
	logger *zap.Logger
	mu     sync.Mutex
}

// Abrir verifica que el workbook exista y sea legible antes de devolver el
// Store. El error resultante es fatal para el arranque e indica qué revisar.
func Abrir(cfg *config.PlanillaConfig, c cache.Cache, logger *zap.Logger) (*Store, error) {
	f, err := excelize.OpenFile(cfg.Path)
	if err != nil {
		return nil, errAbrir(cfg.Path, err)
	}
	if cerr := f.Close(); cerr != nil {
		logger.Warn("no se pudo cerrar el workbook tras la verificación", zap.Error(cerr))
	}

	logger.Info("planilla abierta", zap.String("ruta", cfg.Path), zap.Duration("cache_ttl", cfg.CacheTTL))

	return &Store{
		ruta:   cfg.Path,
		ttl:    cfg.CacheTTL,
		cache:  c,
		logger: logger,
	}, nil
}

func errAbrir(ruta string, err error) error {
	return fmt.Errorf(
		"no se pudo abrir la planilla %q. Revisá:\n"+
			"- la ruta configurada (planilla.path)\n"+
			"- los permisos de lectura/escritura sobre el archivo\n"+
			"- que el archivo sea un .xlsx válido\n\n"+
			"Detalle: %w", ruta, err)
}

// Cargar devuelve el contenido completo de la hoja, reconciliando antes el
// encabezado contra las columnas requeridas: crea la hoja si falta, escribe
// el encabezado si está vacía y reescribe los datos si el esquema derivó.
// Las lecturas pasan primero por la caché.
func (s *Store) Cargar(ctx context.Context, hoja string, columnas []string) (*Tabla, error) {
	if data, ok := s.cache.Get(ctx, hoja); ok {
		var t Tabla
		if err := json.Unmarshal(data, &t); err == nil {
			return &t, nil
		}
		// entrada corrupta: se descarta y se lee de la planilla
		s.cache.Delete(ctx, hoja)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := excelize.OpenFile(s.ruta)
	if err != nil {
		return nil, errAbrir(s.ruta, err)
	}
	defer f.Close()

	filas, reescribir, err := s.leerYReconciliar(f, hoja, columnas)
	if err != nil {
		return nil, err
	}
	if reescribir {
		if err := escribirHoja(f, hoja, columnas, filas); err != nil {
			return nil, fmt.Errorf("no se pudo reescribir la hoja %q: %w", hoja, err)
		}
		if err := f.Save(); err != nil {
			return nil, fmt.Errorf("no se pudo guardar la planilla: %w", err)
		}
		s.logger.Info("esquema de hoja reconciliado", zap.String("hoja", hoja))
	}

	t := &Tabla{Columnas: columnas, Filas: filas}
	if data, err := json.Marshal(t); err == nil {
		s.cache.Set(ctx, hoja, data, s.ttl)
	}
	return t, nil
}

// Guardar sobreescribe la hoja completa (encabezado + filas) e invalida la
// caché para que la próxima lectura vea el estado nuevo.
func (s *Store) Guardar(ctx context.Context, hoja string, columnas []string, filas [][]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := excelize.OpenFile(s.ruta)
	if err != nil {
		return errAbrir(s.ruta, err)
	}
	defer f.Close()

	if err := escribirHoja(f, hoja, columnas, filas); err != nil {
		return fmt.Errorf("no se pudo escribir la hoja %q: %w", hoja, err)
	}
	if err := f.Save(); err != nil {
		return fmt.Errorf("no se pudo guardar la planilla: %w", err)
	}

	s.cache.Delete(ctx, hoja)
	return nil
}

// Invalidar descarta la entrada de caché de una hoja
func (s *Store) Invalidar(ctx context.Context, hoja string) {
	s.cache.Delete(ctx, hoja)
}

// ── internos ──

// leerYReconciliar lee la hoja y alinea los datos con las columnas
// requeridas. Devuelve las filas resultantes y si hace falta reescribir.
func (s *Store) leerYReconciliar(f *excelize.File, hoja string, columnas []string) ([][]string, bool, error) {
	idx, err := f.GetSheetIndex(hoja)
	if err != nil {
		return nil, false, fmt.Errorf("hoja %q: %w", hoja, err)
	}
	if idx < 0 {
		if _, err := f.NewSheet(hoja); err != nil {
			return nil, false, fmt.Errorf("no se pudo crear la hoja %q: %w", hoja, err)
		}
		return nil, true, nil
	}

	todas, err := f.GetRows(hoja)
	if err != nil {
		return nil, false, fmt.Errorf("no se pudo leer la hoja %q: %w", hoja, err)
	}
	if len(todas) == 0 {
		return nil, true, nil
	}

	header := todas[0]
	datos := todas[1:]
	if !MismoHeader(header, columnas) {
		return Reconciliar(header, datos, columnas), true, nil
	}

	// excelize recorta las celdas vacías del final de cada fila
	filas := make([][]string, len(datos))
	for i, fila := range datos {
		nueva := make([]string, len(columnas))
		copy(nueva, fila)
		filas[i] = nueva
	}
	return filas, false, nil
}

// escribirHoja vacía la hoja y escribe encabezado + filas
func escribirHoja(f *excelize.File, hoja string, columnas []string, filas [][]string) error {
	idx, err := f.GetSheetIndex(hoja)
	if err != nil {
		return err
	}
	if idx < 0 {
		if _, err := f.NewSheet(hoja); err != nil {
			return err
		}
	} else {
		existentes, err := f.GetRows(hoja)
		if err != nil {
			return err
		}
		for i := len(existentes); i >= 1; i-- {
			if err := f.RemoveRow(hoja, i); err != nil {
				return err
			}
		}
	}

	if err := setFila(f, hoja, 1, columnas); err != nil {
		return err
	}
	for i, fila := range filas {
		if err := setFila(f, hoja, i+2, fila); err != nil {
			return err
		}
	}
	return nil
}

func setFila(f *excelize.File, hoja string, numero int, valores []string) error {
	celda, err := excelize.CoordinatesToCellName(1, numero)
	if err != nil {
		return err
	}
	fila := make([]interface{}, len(valores))
	for i, v := range valores {
		fila[i] = v
	}
	return f.SetSheetRow(hoja, celda, &fila)
}
