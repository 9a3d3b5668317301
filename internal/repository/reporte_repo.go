package repository

import (
	"context"

	"github.com/datosargentinosjuniors/prestamosaaaj/internal/model"
	"github.com/datosargentinosjuniors/prestamosaaaj/pkg/planilla"
)

const hojaReportes = "reportes"

// ReporteRepository acceso a la hoja "reportes"
type ReporteRepository interface {
	List(ctx context.Context) ([]model.Reporte, error)
	ListByJugador(ctx context.Context, jugadorID string) ([]model.Reporte, error)
	SaveAll(ctx context.Context, reportes []model.Reporte) error
}

type reporteRepo struct {
	store *planilla.Store
}

// NewReporteRepo crea el repositorio de reportes
func NewReporteRepo(store *planilla.Store) ReporteRepository {
	return &reporteRepo{store: store}
}

func (r *reporteRepo) List(ctx context.Context) ([]model.Reporte, error) {
	tabla, err := r.store.Cargar(ctx, hojaReportes, model.ColumnasReportes)
	if err != nil {
		return nil, err
	}

	reportes := make([]model.Reporte, 0, len(tabla.Filas))
	for i := range tabla.Filas {
		rep := decodeReporte(tabla, i)
		if rep.ReporteID == "" && rep.JugadorID == "" {
			continue
		}
		reportes = append(reportes, rep)
	}
	return reportes, nil
}

func (r *reporteRepo) ListByJugador(ctx context.Context, jugadorID string) ([]model.Reporte, error) {
	reportes, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	filtrados := make([]model.Reporte, 0, len(reportes))
	for _, rep := range reportes {
		if rep.JugadorID == jugadorID {
			filtrados = append(filtrados, rep)
		}
	}
	return filtrados, nil
}

func (r *reporteRepo) SaveAll(ctx context.Context, reportes []model.Reporte) error {
	filas := make([][]string, 0, len(reportes))
	for i := range reportes {
		filas = append(filas, encodeReporte(&reportes[i]))
	}
	return r.store.Guardar(ctx, hojaReportes, model.ColumnasReportes, filas)
}

func decodeReporte(t *planilla.Tabla, i int) model.Reporte {
	return model.Reporte{
		ReporteID:    t.Valor(i, "reporte_id"),
		JugadorID:    t.Valor(i, "jugador_id"),
		Titulo:       t.Valor(i, "titulo"),
		FechaReporte: planilla.ParseFecha(t.Valor(i, "fecha_reporte")),
		Cuerpo:       t.Valor(i, "cuerpo"),
		CreatedAt:    planilla.ParseFechaHora(t.Valor(i, "created_at")),
		UpdatedAt:    planilla.ParseFechaHora(t.Valor(i, "updated_at")),
	}
}

func encodeReporte(rep *model.Reporte) []string {
	return []string{
		rep.ReporteID,
		rep.JugadorID,
		rep.Titulo,
		planilla.FormatFecha(rep.FechaReporte),
		rep.Cuerpo,
		planilla.FormatFechaHora(rep.CreatedAt),
		planilla.FormatFechaHora(rep.UpdatedAt),
	}
}
