package dto

// ── módulo resumen — DTO ──

// ResumenListRequest filtros de la tabla acumulada
type ResumenListRequest struct {
	Estado         string `form:"estado" binding:"omitempty,oneof=Activo Finalizado Rescindido"`
	Puesto         string `form:"puesto"`
	Pais           string `form:"pais"`
	SoloConMinutos bool   `form:"solo_con_minutos"`
}

// ResumenFila una fila de la tabla acumulada: el jugador con sus
// estadísticas sumadas sobre todo el seguimiento.
type ResumenFila struct {
	JugadorID           string `json:"jugador_id"`
	Nombre              string `json:"nombre"`
	Puesto              string `json:"puesto"`
	ClubPrestamo        string `json:"club_prestamo,omitempty"`
	PaisPrestamo        string `json:"pais_prestamo,omitempty"`
	Estado              string `json:"estado"`
	Semanas             int    `json:"semanas"`
	PartidosTotal       int    `json:"partidos_total"`
	MinutosTotal        int    `json:"minutos_total"`
	GolesTotal          int    `json:"goles_total"`
	GolesEncajadosTotal int    `json:"goles_encajados_total"`
	AmarillasTotal      int    `json:"amarillas_total"`
	RojasTotal          int    `json:"rojas_total"`
	UltimaSemana        string `json:"ultima_semana,omitempty"`
	EsArquero           bool   `json:"es_arquero"`
}

// ResumenTotales bloque de totales al pie de la tabla acumulada
type ResumenTotales struct {
	Jugadores int `json:"jugadores"`
	Minutos   int `json:"minutos"`
	Partidos  int `json:"partidos"`
	Rojas     int `json:"rojas"`
}

// ResumenResponse tabla acumulada completa
type ResumenResponse struct {
	Filas   []ResumenFila  `json:"filas"`
	Totales ResumenTotales `json:"totales"`
}

// VistaIndividualResponse detalle de un jugador con su historial semanal
// ordenado y sus propios totales
type VistaIndividualResponse struct {
	Jugador   JugadorResponse    `json:"jugador"`
	Historial []RegistroResponse `json:"historial"`
	Totales   ResumenFila        `json:"totales"`
}
