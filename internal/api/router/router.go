package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/datosargentinosjuniors/prestamosaaaj/config"
	"github.com/datosargentinosjuniors/prestamosaaaj/internal/api/handler"
	"github.com/datosargentinosjuniors/prestamosaaaj/internal/api/middleware"
)

// Setup arma y devuelve el motor de rutas
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── middleware global ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// módulo jugadores
		jugadores := v1.Group("/jugadores")
		{
			jugadores.GET("", h.Jugador.ListJugadores)
			jugadores.POST("", h.Jugador.CreateJugador)
			jugadores.GET("/:id", h.Jugador.GetJugador)
			jugadores.PUT("/:id", h.Jugador.UpdateJugador)
			jugadores.POST("/:id/baja", h.Jugador.BajaJugador)
			jugadores.DELETE("/:id", h.Jugador.DeleteJugador)
			jugadores.GET("/:id/seguimiento", h.Jugador.ListSeguimientoDeJugador)
			jugadores.GET("/:id/reportes", h.Jugador.ListReportesDeJugador)
			jugadores.GET("/:id/resumen", h.Jugador.GetResumenDeJugador)
		}

		// módulo seguimiento
		seguimiento := v1.Group("/seguimiento")
		{
			seguimiento.GET("", h.Seguimiento.ListSeguimiento)
			seguimiento.POST("", h.Seguimiento.CreateRegistro)
			seguimiento.PUT("", h.Seguimiento.ReemplazarSeguimiento)
		}

		// módulo reportes
		v1.POST("/reportes", h.Reporte.CreateReporte)

		// módulo resumen
		v1.GET("/resumen", h.Resumen.GetResumen)

		// módulo export
		export := v1.Group("/export")
		{
			export.GET("/excel", h.Export.ExportExcel)
			export.GET("/:tabla/csv", h.Export.ExportCSV)
		}
	}

	return r
}
