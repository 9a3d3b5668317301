package model

import "time"

// ColumnasReportes esquema de la hoja "reportes"
var ColumnasReportes = []string{
	"reporte_id",
	"jugador_id",
	"titulo",
	"fecha_reporte",
	"cuerpo",
	"created_at",
	"updated_at",
}

// Reporte informe de texto libre fechado sobre un jugador — hoja "reportes".
// Inmutable después de creado: sólo alta, listado y eliminación en cascada.
type Reporte struct {
	ReporteID    string
	JugadorID    string
	Titulo       string
	FechaReporte time.Time
	Cuerpo       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
