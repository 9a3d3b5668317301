package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/datosargentinosjuniors/prestamosaaaj/internal/dto"
	"github.com/datosargentinosjuniors/prestamosaaaj/internal/service"
	"github.com/datosargentinosjuniors/prestamosaaaj/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock JugadorService ──

type mockJugadorService struct {
	crearResult      *dto.JugadorResponse
	crearErr         error
	getResult        *dto.JugadorResponse
	getErr           error
	listResult       []dto.JugadorResponse
	listErr          error
	actualizarResult *dto.JugadorResponse
	actualizarErr    error
	bajaResult       *dto.JugadorResponse
	bajaErr          error
	eliminarErr      error
}

func (m *mockJugadorService) Crear(_ context.Context, _ *dto.CreateJugadorRequest) (*dto.JugadorResponse, error) {
	return m.crearResult, m.crearErr
}
func (m *mockJugadorService) GetByID(_ context.Context, _ string) (*dto.JugadorResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockJugadorService) List(_ context.Context, _ *dto.JugadorListRequest) ([]dto.JugadorResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockJugadorService) Actualizar(_ context.Context, _ string, _ *dto.UpdateJugadorRequest) (*dto.JugadorResponse, error) {
	return m.actualizarResult, m.actualizarErr
}
func (m *mockJugadorService) Baja(_ context.Context, _ string, _ string) (*dto.JugadorResponse, error) {
	return m.bajaResult, m.bajaErr
}
func (m *mockJugadorService) Eliminar(_ context.Context, _ string) error {
	return m.eliminarErr
}

// ── Mock SeguimientoService ──

type mockSeguimientoService struct {
	crearResult      *dto.RegistroResponse
	crearErr         error
	listResult       []dto.RegistroResponse
	listErr          error
	porJugadorResult []dto.RegistroResponse
	porJugadorErr    error
	reemplazarResult []dto.RegistroResponse
	reemplazarErr    error
}

func (m *mockSeguimientoService) Crear(_ context.Context, _ *dto.CreateRegistroRequest) (*dto.RegistroResponse, error) {
	return m.crearResult, m.crearErr
}
func (m *mockSeguimientoService) List(_ context.Context) ([]dto.RegistroResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockSeguimientoService) ListByJugador(_ context.Context, _ string) ([]dto.RegistroResponse, error) {
	return m.porJugadorResult, m.porJugadorErr
}
func (m *mockSeguimientoService) Reemplazar(_ context.Context, _ *dto.ReemplazarSeguimientoRequest) ([]dto.RegistroResponse, error) {
	return m.reemplazarResult, m.reemplazarErr
}

// ── Mock ReporteService ──

type mockReporteService struct {
	crearResult *dto.ReporteResponse
	crearErr    error
	listResult  []dto.ReporteResponse
	listErr     error
}

func (m *mockReporteService) Crear(_ context.Context, _ *dto.CreateReporteRequest) (*dto.ReporteResponse, error) {
	return m.crearResult, m.crearErr
}
func (m *mockReporteService) ListByJugador(_ context.Context, _ string) ([]dto.ReporteResponse, error) {
	return m.listResult, m.listErr
}

// ── Mock ResumenService ──

type mockResumenService struct {
	tablaResult *dto.ResumenResponse
	tablaErr    error
	vistaResult *dto.VistaIndividualResponse
	vistaErr    error
}

func (m *mockResumenService) TablaAcumulada(_ context.Context, _ *dto.ResumenListRequest) (*dto.ResumenResponse, error) {
	return m.tablaResult, m.tablaErr
}
func (m *mockResumenService) VistaIndividual(_ context.Context, _ string) (*dto.VistaIndividualResponse, error) {
	return m.vistaResult, m.vistaErr
}

// ── Mock ExportService ──

type mockExportService struct {
	excelBuf    *bytes.Buffer
	excelNombre string
	excelErr    error
	csvData     []byte
	csvNombre   string
	csvErr      error
}

func (m *mockExportService) ExportarExcel(_ context.Context) (*bytes.Buffer, string, error) {
	return m.excelBuf, m.excelNombre, m.excelErr
}
func (m *mockExportService) ExportarCSV(_ context.Context, _ string) ([]byte, string, error) {
	return m.csvData, m.csvNombre, m.csvErr
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// ═══════════════════════════════════════════════════════════
// JugadorHandler Tests
// ═══════════════════════════════════════════════════════════

func nuevoJugadorHandler(jugadorSvc service.JugadorService, resumenSvc service.ResumenService) *JugadorHandler {
	if resumenSvc == nil {
		resumenSvc = &mockResumenService{}
	}
	return NewJugadorHandler(jugadorSvc, &mockSeguimientoService{}, &mockReporteService{}, resumenSvc)
}

func TestJugadorHandler_Create_OK(t *testing.T) {
	mock := &mockJugadorService{
		crearResult: &dto.JugadorResponse{JugadorID: "jug-001", Nombre: "Nahuel Soto", Estado: "Activo"},
	}
	h := nuevoJugadorHandler(mock, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/jugadores", jsonBody(dto.CreateJugadorRequest{
		Nombre: "Nahuel Soto",
		Puesto: "Lateral",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/jugadores", h.CreateJugador)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("esperaba 201, vino %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("esperaba code 0, vino %d", resp.Code)
	}
}

func TestJugadorHandler_Create_JSONRoto(t *testing.T) {
	h := nuevoJugadorHandler(&mockJugadorService{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/jugadores", bytes.NewReader([]byte("esto no es json")))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/jugadores", h.CreateJugador)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("esperaba 400, vino %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 10001 {
		t.Errorf("esperaba code 10001, vino %d", resp.Code)
	}
}

func TestJugadorHandler_Get_NoEncontrado(t *testing.T) {
	mock := &mockJugadorService{getErr: service.ErrJugadorNoEncontrado}
	h := nuevoJugadorHandler(mock, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/jugadores/jug-999", nil)

	r := gin.New()
	r.GET("/jugadores/:id", h.GetJugador)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("esperaba 404, vino %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 12001 {
		t.Errorf("esperaba code 12001, vino %d", resp.Code)
	}
}

func TestJugadorHandler_Baja_OK(t *testing.T) {
	mock := &mockJugadorService{
		bajaResult: &dto.JugadorResponse{JugadorID: "jug-001", Estado: "Rescindido"},
	}
	h := nuevoJugadorHandler(mock, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/jugadores/jug-001/baja", jsonBody(dto.BajaJugadorRequest{
		Motivo: "vuelve de su préstamo",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/jugadores/:id/baja", h.BajaJugador)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("esperaba 200, vino %d", w.Code)
	}
}

func TestJugadorHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{"NoEncontrado", service.ErrJugadorNoEncontrado, 404, 12001},
		{"NombreVacio", service.ErrNombreVacio, 400, 12002},
		{"PuestoInvalido", service.ErrPuestoInvalido, 400, 12003},
		{"DivisionInvalida", service.ErrDivisionInvalida, 400, 12004},
		{"EstadoInvalido", service.ErrEstadoInvalido, 400, 12005},
		{"Interno", errors.New("se rompió la planilla"), 500, 50000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockJugadorService{crearErr: tt.err}
			h := nuevoJugadorHandler(mock, nil)

			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/jugadores", jsonBody(dto.CreateJugadorRequest{
				Nombre: "Nahuel Soto",
				Puesto: "Lateral",
			}))
			req.Header.Set("Content-Type", "application/json")

			r := gin.New()
			r.POST("/jugadores", h.CreateJugador)
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("esperaba status %d, vino %d", tt.wantStatus, w.Code)
			}
			resp := parseResponse(w)
			if resp.Code != tt.wantCode {
				t.Errorf("esperaba code %d, vino %d", tt.wantCode, resp.Code)
			}
		})
	}
}

func TestJugadorHandler_ResumenIndividual_OK(t *testing.T) {
	resumen := &mockResumenService{
		vistaResult: &dto.VistaIndividualResponse{
			Jugador: dto.JugadorResponse{JugadorID: "jug-002", Nombre: "Ana López", EsArquero: true},
		},
	}
	h := nuevoJugadorHandler(&mockJugadorService{}, resumen)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/jugadores/jug-002/resumen", nil)

	r := gin.New()
	r.GET("/jugadores/:id/resumen", h.GetResumenDeJugador)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("esperaba 200, vino %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// SeguimientoHandler Tests
// ═══════════════════════════════════════════════════════════

func TestSeguimientoHandler_Create_OK(t *testing.T) {
	mock := &mockSeguimientoService{
		crearResult: &dto.RegistroResponse{RegistroID: "reg-001", WeekStart: "2026-03-02", WeekEnd: "2026-03-08"},
	}
	h := NewSeguimientoHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/seguimiento", jsonBody(dto.CreateRegistroRequest{
		JugadorID: "jug-001",
		Fecha:     "2026-03-04",
		Minutos:   90,
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/seguimiento", h.CreateRegistro)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("esperaba 201, vino %d", w.Code)
	}
}

func TestSeguimientoHandler_Create_FueraDeRango(t *testing.T) {
	h := NewSeguimientoHandler(&mockSeguimientoService{})

	w := httptest.NewRecorder()
	// 1200 minutos no entran en una semana
	req := httptest.NewRequest("POST", "/seguimiento", jsonBody(dto.CreateRegistroRequest{
		JugadorID: "jug-001",
		Fecha:     "2026-03-04",
		Minutos:   1200,
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/seguimiento", h.CreateRegistro)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("esperaba 400, vino %d", w.Code)
	}
}

func TestSeguimientoHandler_Create_SemanaDuplicada(t *testing.T) {
	mock := &mockSeguimientoService{crearErr: service.ErrSemanaDuplicada}
	h := NewSeguimientoHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/seguimiento", jsonBody(dto.CreateRegistroRequest{
		JugadorID: "jug-001",
		Fecha:     "2026-03-04",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/seguimiento", h.CreateRegistro)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("esperaba 409, vino %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 13001 {
		t.Errorf("esperaba code 13001, vino %d", resp.Code)
	}
}

func TestSeguimientoHandler_Create_JugadorInactivo(t *testing.T) {
	mock := &mockSeguimientoService{crearErr: service.ErrJugadorInactivo}
	h := NewSeguimientoHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/seguimiento", jsonBody(dto.CreateRegistroRequest{
		JugadorID: "jug-001",
		Fecha:     "2026-03-04",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/seguimiento", h.CreateRegistro)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("esperaba 400, vino %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 13002 {
		t.Errorf("esperaba code 13002, vino %d", resp.Code)
	}
}

func TestSeguimientoHandler_Reemplazar_OK(t *testing.T) {
	mock := &mockSeguimientoService{reemplazarResult: []dto.RegistroResponse{}}
	h := NewSeguimientoHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/seguimiento", jsonBody(dto.ReemplazarSeguimientoRequest{
		Registros: []dto.RegistroItem{},
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PUT("/seguimiento", h.ReemplazarSeguimiento)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("esperaba 200, vino %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ReporteHandler Tests
// ═══════════════════════════════════════════════════════════

func TestReporteHandler_Create_OK(t *testing.T) {
	mock := &mockReporteService{
		crearResult: &dto.ReporteResponse{ReporteID: "rep-001", Titulo: "Debut"},
	}
	h := NewReporteHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/reportes", jsonBody(dto.CreateReporteRequest{
		JugadorID: "jug-001",
		Titulo:    "Debut",
		Cuerpo:    "Jugó todo el partido.",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/reportes", h.CreateReporte)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("esperaba 201, vino %d", w.Code)
	}
}

func TestReporteHandler_Create_TituloVacio(t *testing.T) {
	mock := &mockReporteService{crearErr: service.ErrTituloVacio}
	h := NewReporteHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/reportes", jsonBody(dto.CreateReporteRequest{
		JugadorID: "jug-001",
		Titulo:    "x",
		Cuerpo:    "texto",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/reportes", h.CreateReporte)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("esperaba 400, vino %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 14001 {
		t.Errorf("esperaba code 14001, vino %d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ResumenHandler Tests
// ═══════════════════════════════════════════════════════════

func TestResumenHandler_OK(t *testing.T) {
	mock := &mockResumenService{
		tablaResult: &dto.ResumenResponse{
			Filas:   []dto.ResumenFila{{JugadorID: "jug-001", Nombre: "Nahuel Soto", MinutosTotal: 90}},
			Totales: dto.ResumenTotales{Jugadores: 1, Minutos: 90},
		},
	}
	h := NewResumenHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/resumen?estado=Activo", nil)

	r := gin.New()
	r.GET("/resumen", h.GetResumen)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("esperaba 200, vino %d", w.Code)
	}
}

func TestResumenHandler_SinRegistros(t *testing.T) {
	mock := &mockResumenService{tablaErr: service.ErrSinRegistros}
	h := NewResumenHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/resumen", nil)

	r := gin.New()
	r.GET("/resumen", h.GetResumen)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("esperaba 404, vino %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 15001 {
		t.Errorf("esperaba code 15001, vino %d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler Tests
// ═══════════════════════════════════════════════════════════

func TestExportHandler_Excel_OK(t *testing.T) {
	mock := &mockExportService{
		excelBuf:    bytes.NewBufferString("contenido xlsx"),
		excelNombre: "prestamos_aaaj_2026-03-08.xlsx",
	}
	h := NewExportHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/excel", nil)

	r := gin.New()
	r.GET("/export/excel", h.ExportExcel)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("esperaba 200, vino %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != contentTypeXLSX {
		t.Errorf("content type inesperado: %s", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd == "" {
		t.Error("falta el encabezado Content-Disposition")
	}
}

func TestExportHandler_CSV_OK(t *testing.T) {
	mock := &mockExportService{
		csvData:   []byte("jugador_id,nombre\n"),
		csvNombre: "jugadores_2026-03-08.csv",
	}
	h := NewExportHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/jugadores/csv", nil)

	r := gin.New()
	r.GET("/export/:tabla/csv", h.ExportCSV)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("esperaba 200, vino %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != contentTypeCSV {
		t.Errorf("content type inesperado: %s", ct)
	}
}

func TestExportHandler_CSV_TablaDesconocida(t *testing.T) {
	mock := &mockExportService{csvErr: service.ErrTablaDesconocida}
	h := NewExportHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/prestamos/csv", nil)

	r := gin.New()
	r.GET("/export/:tabla/csv", h.ExportCSV)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("esperaba 400, vino %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 16001 {
		t.Errorf("esperaba code 16001, vino %d", resp.Code)
	}
}
