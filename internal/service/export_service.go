package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/datosargentinosjuniors/prestamosaaaj/internal/dto"
	"github.com/datosargentinosjuniors/prestamosaaaj/internal/model"
	"github.com/datosargentinosjuniors/prestamosaaaj/internal/repository"
	"github.com/datosargentinosjuniors/prestamosaaaj/pkg/planilla"
)

// ── módulo export — errores de negocio ──

var (
	ErrTablaDesconocida = errors.New("la tabla pedida no existe: usar jugadores, seguimiento o reportes")
	ErrExportGenerar    = errors.New("no se pudo generar el archivo de exportación")
)

// ExportService arma los archivos descargables del tablero
//
// El Excel lleva tres capas de hojas:
//   - hojas crudas (jugadores / seguimiento / reportes) con las mismas
//     columnas y valores que la planilla, aptas para reimportar;
//   - hojas "(vista)" con rótulos humanos y encabezado con estilo;
//   - la hoja Resumen con la tabla acumulada.
//
// El CSV exporta una sola tabla cruda por pedido.
type ExportService interface {
	ExportarExcel(ctx context.Context) (*bytes.Buffer, string, error)
	ExportarCSV(ctx context.Context, tabla string) ([]byte, string, error)
}

type exportService struct {
	repo    *repository.Repository
	resumen ResumenService
	logger  *zap.Logger
}

// NewExportService crea el servicio de exportación
func NewExportService(repo *repository.Repository, resumen ResumenService, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, resumen: resumen, logger: logger}
}

// rótulos humanos para las hojas "(vista)"
var (
	rotulosJugadores = []string{
		"Nombre", "Puesto", "Fecha de nacimiento", "País", "División", "Club",
		"Opción de compra", "Repesca", "Fecha de retorno", "Fin contrato AAAJ",
		"Estado", "Observaciones",
	}
	rotulosSeguimiento = []string{
		"Jugador", "Inicio de semana", "Fin de semana", "Partidos", "Minutos",
		"Goles", "Goles encajados", "Amarillas", "Rojas", "Incidencias",
	}
	rotulosReportes = []string{
		"Jugador", "Título", "Fecha", "Cuerpo",
	}
	rotulosResumen = []string{
		"Jugador", "Puesto", "Club", "País", "Estado", "Semanas", "Partidos",
		"Minutos", "Goles", "Goles encajados", "Amarillas", "Rojas", "Última semana",
	}
)

// ═══════════════════════════════════════════════════════════
// ExportarExcel — libro completo multi-hoja
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportarExcel(ctx context.Context) (*bytes.Buffer, string, error) {
	jugadores, err := s.repo.Jugador.List(ctx)
	if err != nil {
		s.logger.Error("no se pudo leer la hoja de jugadores", zap.Error(err))
		return nil, "", err
	}
	registros, err := s.repo.Seguimiento.List(ctx)
	if err != nil {
		s.logger.Error("no se pudo leer la hoja de seguimiento", zap.Error(err))
		return nil, "", err
	}
	reportes, err := s.repo.Reporte.List(ctx)
	if err != nil {
		s.logger.Error("no se pudo leer la hoja de reportes", zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#C8102E"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// ── hojas crudas ──
	s.escribirHoja(f, "jugadores", model.ColumnasJugadores, filasJugadores(jugadores), 0)
	s.escribirHoja(f, "seguimiento", model.ColumnasSeguimiento, filasRegistros(registros), 0)
	s.escribirHoja(f, "reportes", model.ColumnasReportes, filasReportes(reportes), 0)

	// ── hojas con vista humana ──
	nombrePorID := make(map[string]string, len(jugadores))
	for i := range jugadores {
		nombrePorID[jugadores[i].JugadorID] = jugadores[i].Nombre
	}
	s.escribirHoja(f, "Jugadores (vista)", rotulosJugadores, vistaJugadores(jugadores), headerStyle)
	s.escribirHoja(f, "Seguimiento (vista)", rotulosSeguimiento, vistaRegistros(registros, nombrePorID), headerStyle)
	s.escribirHoja(f, "Reportes (vista)", rotulosReportes, vistaReportes(reportes, nombrePorID), headerStyle)

	// ── hoja resumen ──
	resumen, err := s.resumen.TablaAcumulada(ctx, &dto.ResumenListRequest{})
	if err != nil && !errors.Is(err, ErrSinRegistros) {
		return nil, "", err
	}
	var filasRes [][]string
	if resumen != nil {
		filasRes = vistaResumen(resumen.Filas)
	}
	s.escribirHoja(f, "Resumen", rotulosResumen, filasRes, headerStyle)

	f.DeleteSheet("Sheet1")

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("no se pudo escribir el Excel de exportación", zap.Error(err))
		return nil, "", ErrExportGenerar
	}

	nombre := fmt.Sprintf("prestamos_aaaj_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf, nombre, nil
}

// ═══════════════════════════════════════════════════════════
// ExportarCSV — una tabla cruda por pedido
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportarCSV(ctx context.Context, tabla string) ([]byte, string, error) {
	var (
		columnas []string
		filas    [][]string
	)

	switch tabla {
	case "jugadores":
		jugadores, err := s.repo.Jugador.List(ctx)
		if err != nil {
			s.logger.Error("no se pudo leer la hoja de jugadores", zap.Error(err))
			return nil, "", err
		}
		columnas, filas = model.ColumnasJugadores, filasJugadores(jugadores)
	case "seguimiento":
		registros, err := s.repo.Seguimiento.List(ctx)
		if err != nil {
			s.logger.Error("no se pudo leer la hoja de seguimiento", zap.Error(err))
			return nil, "", err
		}
		columnas, filas = model.ColumnasSeguimiento, filasRegistros(registros)
	case "reportes":
		reportes, err := s.repo.Reporte.List(ctx)
		if err != nil {
			s.logger.Error("no se pudo leer la hoja de reportes", zap.Error(err))
			return nil, "", err
		}
		columnas, filas = model.ColumnasReportes, filasReportes(reportes)
	default:
		return nil, "", ErrTablaDesconocida
	}

	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)
	if err := w.Write(columnas); err != nil {
		return nil, "", ErrExportGenerar
	}
	if err := w.WriteAll(filas); err != nil {
		return nil, "", ErrExportGenerar
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", ErrExportGenerar
	}

	nombre := fmt.Sprintf("%s_%s.csv", tabla, time.Now().Format("2006-01-02"))
	return buf.Bytes(), nombre, nil
}

// ── armado de hojas ──

func (s *exportService) escribirHoja(f *excelize.File, hoja string, header []string, filas [][]string, estilo int) {
	if _, err := f.NewSheet(hoja); err != nil {
		s.logger.Warn("no se pudo crear la hoja de exportación", zap.String("hoja", hoja), zap.Error(err))
		return
	}

	headerVals := make([]interface{}, len(header))
	for i, h := range header {
		headerVals[i] = h
	}
	f.SetSheetRow(hoja, "A1", &headerVals)
	if estilo != 0 {
		fin, _ := excelize.CoordinatesToCellName(len(header), 1)
		f.SetCellStyle(hoja, "A1", fin, estilo)
	}

	for i, fila := range filas {
		vals := make([]interface{}, len(fila))
		for c, v := range fila {
			vals[c] = v
		}
		celda, _ := excelize.CoordinatesToCellName(1, i+2)
		f.SetSheetRow(hoja, celda, &vals)
	}
}

// ── filas crudas: mismo orden y formato que la planilla ──

func filasJugadores(jugadores []model.Jugador) [][]string {
	filas := make([][]string, 0, len(jugadores))
	for i := range jugadores {
		j := &jugadores[i]
		filas = append(filas, []string{
			j.JugadorID, j.Nombre, j.Puesto,
			planilla.FormatFecha(j.FechaNacimiento),
			j.PaisPrestamo, j.DivisionPrestamo, j.ClubPrestamo,
			planilla.FormatBool(j.OpcionCompra), planilla.FormatBool(j.OpcionRepesca),
			planilla.FormatFecha(j.FechaRetorno), planilla.FormatFecha(j.FinContrato),
			string(j.Estado), j.Observaciones,
			planilla.FormatFechaHora(j.CreatedAt), planilla.FormatFechaHora(j.UpdatedAt),
		})
	}
	return filas
}

func filasRegistros(registros []model.RegistroSemanal) [][]string {
	filas := make([][]string, 0, len(registros))
	for i := range registros {
		r := &registros[i]
		filas = append(filas, []string{
			r.RegistroID, r.JugadorID,
			planilla.FormatFecha(r.WeekStart), planilla.FormatFecha(r.WeekEnd),
			planilla.FormatEntero(r.Partidos), planilla.FormatEntero(r.Minutos),
			planilla.FormatEntero(r.GolesMarcados), planilla.FormatEntero(r.GolesEncajados),
			planilla.FormatEntero(r.Amarillas), planilla.FormatEntero(r.Rojas),
			r.Incidencias,
			planilla.FormatFechaHora(r.CreatedAt), planilla.FormatFechaHora(r.UpdatedAt),
		})
	}
	return filas
}

func filasReportes(reportes []model.Reporte) [][]string {
	filas := make([][]string, 0, len(reportes))
	for i := range reportes {
		r := &reportes[i]
		filas = append(filas, []string{
			r.ReporteID, r.JugadorID, r.Titulo,
			planilla.FormatFecha(r.FechaReporte), r.Cuerpo,
			planilla.FormatFechaHora(r.CreatedAt), planilla.FormatFechaHora(r.UpdatedAt),
		})
	}
	return filas
}

// ── filas de las vistas humanas ──

func vistaJugadores(jugadores []model.Jugador) [][]string {
	filas := make([][]string, 0, len(jugadores))
	for i := range jugadores {
		j := &jugadores[i]
		filas = append(filas, []string{
			j.Nombre, j.Puesto,
			planilla.FormatFecha(j.FechaNacimiento),
			j.PaisPrestamo, j.DivisionPrestamo, j.ClubPrestamo,
			siNo(j.OpcionCompra), siNo(j.OpcionRepesca),
			planilla.FormatFecha(j.FechaRetorno), planilla.FormatFecha(j.FinContrato),
			string(j.Estado), j.Observaciones,
		})
	}
	return filas
}

func vistaRegistros(registros []model.RegistroSemanal, nombrePorID map[string]string) [][]string {
	filas := make([][]string, 0, len(registros))
	for i := range registros {
		r := &registros[i]
		nombre := nombrePorID[r.JugadorID]
		if nombre == "" {
			nombre = r.JugadorID
		}
		filas = append(filas, []string{
			nombre,
			planilla.FormatFecha(r.WeekStart), planilla.FormatFecha(r.WeekEnd),
			planilla.FormatEntero(r.Partidos), planilla.FormatEntero(r.Minutos),
			planilla.FormatEntero(r.GolesMarcados), planilla.FormatEntero(r.GolesEncajados),
			planilla.FormatEntero(r.Amarillas), planilla.FormatEntero(r.Rojas),
			r.Incidencias,
		})
	}
	return filas
}

func vistaReportes(reportes []model.Reporte, nombrePorID map[string]string) [][]string {
	filas := make([][]string, 0, len(reportes))
	for i := range reportes {
		r := &reportes[i]
		nombre := nombrePorID[r.JugadorID]
		if nombre == "" {
			nombre = r.JugadorID
		}
		filas = append(filas, []string{
			nombre, r.Titulo,
			planilla.FormatFecha(r.FechaReporte), r.Cuerpo,
		})
	}
	return filas
}

func vistaResumen(filasRes []dto.ResumenFila) [][]string {
	filas := make([][]string, 0, len(filasRes))
	for i := range filasRes {
		fr := &filasRes[i]
		filas = append(filas, []string{
			fr.Nombre, fr.Puesto, fr.ClubPrestamo, fr.PaisPrestamo, fr.Estado,
			planilla.FormatEntero(fr.Semanas), planilla.FormatEntero(fr.PartidosTotal),
			planilla.FormatEntero(fr.MinutosTotal), planilla.FormatEntero(fr.GolesTotal),
			planilla.FormatEntero(fr.GolesEncajadosTotal), planilla.FormatEntero(fr.AmarillasTotal),
			planilla.FormatEntero(fr.RojasTotal), fr.UltimaSemana,
		})
	}
	return filas
}

func siNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}
