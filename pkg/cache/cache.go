// Package cache implementa la caché de lectura de corta vida que antecede
// a la planilla. Toda escritura sobre una tabla debe invalidar su entrada
// para que la próxima lectura vea el estado nuevo.
package cache

import (
	"context"
	"time"
)

// Cache caché de snapshots de tabla serializados
type Cache interface {
	// Get devuelve el valor y true si la clave existe y no venció
	Get(ctx context.Context, key string) ([]byte, bool)
	// Set guarda el valor con la vida indicada
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	// Delete invalida la clave
	Delete(ctx context.Context, key string)
}
