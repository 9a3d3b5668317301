package cache

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/datosargentinosjuniors/prestamosaaaj/config"
)

// Redis caché respaldada en Redis, para despliegues con más de una réplica
// del tablero compartiendo la misma planilla.
type Redis struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

const prefijo = "prestamos:tabla:"

// NewRedis crea la conexión y verifica con Ping. Si Redis no responde el
// llamador decide degradar al driver en memoria.
func NewRedis(cfg *config.RedisConfig, logger *zap.Logger) (*Redis, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("no se pudo conectar a Redis: %w", err)
	}

	logger.Info("conexión a Redis establecida", zap.String("addr", cfg.Addr))

	return &Redis{rdb: rdb, logger: logger}, nil
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := r.rdb.Get(ctx, prefijo+key).Bytes()
	if err != nil {
		if err != goredis.Nil {
			r.logger.Warn("fallo leyendo la caché, se ignora", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return val, true
}

func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	if err := r.rdb.Set(ctx, prefijo+key, value, ttl).Err(); err != nil {
		r.logger.Warn("fallo escribiendo la caché, se ignora", zap.String("key", key), zap.Error(err))
	}
}

func (r *Redis) Delete(ctx context.Context, key string) {
	if err := r.rdb.Del(ctx, prefijo+key).Err(); err != nil {
		r.logger.Warn("fallo invalidando la caché, se ignora", zap.String("key", key), zap.Error(err))
	}
}

// Close cierra la conexión
func (r *Redis) Close() error {
	return r.rdb.Close()
}
