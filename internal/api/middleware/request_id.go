package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// requestIDMaxLen limita el largo de un Request-ID externo para que no
// ensucie los logs
const requestIDMaxLen = 64

// RequestID lee X-Request-ID del request o genera un UUID nuevo, lo deja
// en el contexto y lo devuelve en el encabezado de la respuesta
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" || len(rid) > requestIDMaxLen {
			rid = uuid.New().String()
		}

		c.Set(requestIDKey, rid)
		c.Header("X-Request-ID", rid)

		c.Next()
	}
}
