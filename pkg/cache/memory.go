package cache

import (
	"context"
	"sync"
	"time"
)

// Memory caché en memoria del proceso, con vencimiento por entrada.
// Es el driver por defecto: el tablero corre en un solo proceso y la
// caché sólo tiene que sobrevivir decenas de segundos.
type Memory struct {
	mu       sync.Mutex
	entradas map[string]entrada
}

type entrada struct {
	valor []byte
	vence time.Time
}

// NewMemory crea una caché en memoria vacía
func NewMemory() *Memory {
	return &Memory{entradas: make(map[string]entrada)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entradas[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.vence) {
		delete(m.entradas, key)
		return nil, false
	}
	return e.valor, true
}

func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entradas[key] = entrada{valor: value, vence: time.Now().Add(ttl)}
}

func (m *Memory) Delete(_ context.Context, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entradas, key)
}
