package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/datosargentinosjuniors/prestamosaaaj/config"
	"github.com/datosargentinosjuniors/prestamosaaaj/internal/api/handler"
	"github.com/datosargentinosjuniors/prestamosaaaj/internal/api/router"
	"github.com/datosargentinosjuniors/prestamosaaaj/internal/repository"
	"github.com/datosargentinosjuniors/prestamosaaaj/internal/service"
	"github.com/datosargentinosjuniors/prestamosaaaj/pkg/cache"
	applogger "github.com/datosargentinosjuniors/prestamosaaaj/pkg/logger"
	"github.com/datosargentinosjuniors/prestamosaaaj/pkg/planilla"
)

func main() {
	// 1. cargar configuración
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "no se pudo cargar la configuración: %v\n", err)
		os.Exit(1)
	}

	// 2. inicializar logs
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "no se pudo inicializar el logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("arrancando el tablero de préstamos...",
		zap.Int("port", cfg.Server.Port),
		zap.String("planilla", cfg.Planilla.Path),
		zap.String("convencion_semana", cfg.Semana.Convencion),
	)

	// 3. caché de lectura (Redis opcional: si no responde se degrada a memoria)
	var (
		tablaCache cache.Cache
		redisCache *cache.Redis
	)
	if cfg.Cache.Driver == "redis" {
		redisCache, err = cache.NewRedis(&cfg.Redis, logger)
		if err != nil {
			logger.Warn("Redis no responde, la caché queda en memoria", zap.Error(err))
			tablaCache = cache.NewMemory()
		} else {
			tablaCache = redisCache
		}
	} else {
		tablaCache = cache.NewMemory()
	}

	// 4. abrir la planilla (su ausencia es fatal)
	store, err := planilla.Abrir(&cfg.Planilla, tablaCache, logger)
	if err != nil {
		logger.Fatal("no se pudo abrir la planilla", zap.Error(err))
	}

	// 5. inyección de dependencias: Repository → Service → Handler
	repo := repository.NewRepository(store)
	svc := service.NewService(cfg, repo, logger)
	h := handler.NewHandler(svc)

	// 6. rutas
	engine := router.Setup(cfg, h, logger)

	// 7. servidor HTTP con cierre ordenado
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("servidor HTTP escuchando", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("el servidor HTTP se cayó", zap.Error(err))
		}
	}()

	// 8. esperar la señal del sistema y cerrar ordenado
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("señal de cierre recibida", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("el cierre del servidor no fue limpio", zap.Error(err))
	}

	if redisCache != nil {
		redisCache.Close()
	}

	logger.Info("servidor apagado")
}
