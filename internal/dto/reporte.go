package dto

// ── módulo reportes — DTO ──

// CreateReporteRequest alta de reporte de scouting
type CreateReporteRequest struct {
	JugadorID    string `json:"jugador_id"    binding:"required"`
	Titulo       string `json:"titulo"        binding:"required,max=200"`
	FechaReporte string `json:"fecha_reporte" binding:"omitempty"` // hoy si falta
	Cuerpo       string `json:"cuerpo"        binding:"required,max=10000"`
}

// ReporteResponse reporte serializado hacia el cliente
type ReporteResponse struct {
	ReporteID    string `json:"reporte_id"`
	JugadorID    string `json:"jugador_id"`
	Titulo       string `json:"titulo"`
	FechaReporte string `json:"fecha_reporte"`
	Cuerpo       string `json:"cuerpo"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}
