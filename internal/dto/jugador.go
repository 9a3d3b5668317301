package dto

// ── módulo jugadores — DTO ──

// CreateJugadorRequest alta de jugador
type CreateJugadorRequest struct {
	Nombre           string `json:"nombre"            binding:"required,min=2,max=120"`
	Puesto           string `json:"puesto"            binding:"required"`
	FechaNacimiento  string `json:"fecha_nacimiento"  binding:"omitempty"` // "2004-05-17"
	PaisPrestamo     string `json:"pais_prestamo"     binding:"omitempty,max=80"`
	DivisionPrestamo string `json:"division_prestamo" binding:"omitempty"`
	ClubPrestamo     string `json:"club_prestamo"     binding:"omitempty,max=120"`
	OpcionCompra     bool   `json:"opcion_compra"`
	OpcionRepesca    bool   `json:"opcion_repesca"`
	FechaRetorno     string `json:"fecha_retorno"     binding:"omitempty"`
	FinContrato      string `json:"fin_contrato_aaaj" binding:"omitempty"`
	Observaciones    string `json:"observaciones"     binding:"omitempty,max=2000"`
}

// UpdateJugadorRequest edición parcial de jugador
type UpdateJugadorRequest struct {
	Nombre           *string `json:"nombre"            binding:"omitempty,min=2,max=120"`
	Puesto           *string `json:"puesto"`
	FechaNacimiento  *string `json:"fecha_nacimiento"`
	PaisPrestamo     *string `json:"pais_prestamo"     binding:"omitempty,max=80"`
	DivisionPrestamo *string `json:"division_prestamo"`
	ClubPrestamo     *string `json:"club_prestamo"     binding:"omitempty,max=120"`
	OpcionCompra     *bool   `json:"opcion_compra"`
	OpcionRepesca    *bool   `json:"opcion_repesca"`
	FechaRetorno     *string `json:"fecha_retorno"`
	FinContrato      *string `json:"fin_contrato_aaaj"`
	Estado           *string `json:"estado"            binding:"omitempty,oneof=Activo Finalizado Rescindido"`
	Observaciones    *string `json:"observaciones"     binding:"omitempty,max=2000"`
}

// BajaJugadorRequest baja administrativa (rescisión del préstamo)
type BajaJugadorRequest struct {
	Motivo string `json:"motivo" binding:"omitempty,max=500"`
}

// JugadorListRequest filtros del listado
type JugadorListRequest struct {
	Estado string `form:"estado" binding:"omitempty,oneof=Activo Finalizado Rescindido"`
	Puesto string `form:"puesto"`
	Pais   string `form:"pais"`
}

// JugadorResponse jugador serializado hacia el cliente
type JugadorResponse struct {
	JugadorID        string `json:"jugador_id"`
	Nombre           string `json:"nombre"`
	Puesto           string `json:"puesto"`
	FechaNacimiento  string `json:"fecha_nacimiento,omitempty"`
	PaisPrestamo     string `json:"pais_prestamo,omitempty"`
	DivisionPrestamo string `json:"division_prestamo,omitempty"`
	ClubPrestamo     string `json:"club_prestamo,omitempty"`
	OpcionCompra     bool   `json:"opcion_compra"`
	OpcionRepesca    bool   `json:"opcion_repesca"`
	FechaRetorno     string `json:"fecha_retorno,omitempty"`
	FinContrato      string `json:"fin_contrato_aaaj,omitempty"`
	Estado           string `json:"estado"`
	Observaciones    string `json:"observaciones,omitempty"`
	EsArquero        bool   `json:"es_arquero"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}
