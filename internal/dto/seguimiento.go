package dto

// ── módulo seguimiento — DTO ──

// CreateRegistroRequest carga semanal de estadísticas. La fecha puede caer
// en cualquier día: el servidor la normaliza a la ventana semanal según la
// convención configurada.
type CreateRegistroRequest struct {
	JugadorID      string `json:"jugador_id"      binding:"required"`
	Fecha          string `json:"fecha"           binding:"required"` // "2026-03-06"
	Partidos       int    `json:"partidos"        binding:"min=0,max=10"`
	Minutos        int    `json:"minutos"         binding:"min=0,max=900"`
	GolesMarcados  int    `json:"goles_marcados"  binding:"min=0,max=50"`
	GolesEncajados int    `json:"goles_encajados" binding:"min=0,max=50"`
	Amarillas      int    `json:"amarillas"       binding:"min=0,max=10"`
	Rojas          int    `json:"rojas"           binding:"min=0,max=10"`
	Incidencias    string `json:"incidencias"     binding:"omitempty,max=1000"`
}

// RegistroItem una fila del reemplazo masivo. A diferencia del alta, acá
// la ventana viaja explícita porque proviene de la tabla editada.
type RegistroItem struct {
	RegistroID     string `json:"registro_id"     binding:"omitempty"`
	JugadorID      string `json:"jugador_id"      binding:"required"`
	WeekStart      string `json:"week_start"      binding:"omitempty"`
	WeekEnd        string `json:"week_end"        binding:"required"`
	Partidos       int    `json:"partidos"        binding:"min=0,max=10"`
	Minutos        int    `json:"minutos"         binding:"min=0,max=900"`
	GolesMarcados  int    `json:"goles_marcados"  binding:"min=0,max=50"`
	GolesEncajados int    `json:"goles_encajados" binding:"min=0,max=50"`
	Amarillas      int    `json:"amarillas"       binding:"min=0,max=10"`
	Rojas          int    `json:"rojas"           binding:"min=0,max=10"`
	Incidencias    string `json:"incidencias"     binding:"omitempty,max=1000"`
}

// ReemplazarSeguimientoRequest reemplazo completo de la tabla (modo admin)
type ReemplazarSeguimientoRequest struct {
	Registros []RegistroItem `json:"registros" binding:"required,dive"`
}

// RegistroResponse registro semanal serializado hacia el cliente
type RegistroResponse struct {
	RegistroID     string `json:"registro_id"`
	JugadorID      string `json:"jugador_id"`
	WeekStart      string `json:"week_start"`
	WeekEnd        string `json:"week_end"`
	Partidos       int    `json:"partidos"`
	Minutos        int    `json:"minutos"`
	GolesMarcados  int    `json:"goles_marcados"`
	GolesEncajados int    `json:"goles_encajados"`
	Amarillas      int    `json:"amarillas"`
	Rojas          int    `json:"rojas"`
	Incidencias    string `json:"incidencias,omitempty"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}
