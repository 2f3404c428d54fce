package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BelezaStudio/salon-agenda-api/internal/httperr"
)

const ContextSalonID = "salonID"

// TenantResolver extrai o salão do path. Não valida existência: leituras
// seguintes respondem 404 se o id não existir.
func TenantResolver() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Param("salonId")

		id, err := strconv.ParseUint(raw, 10, 64)
		if raw == "" || err != nil || id == 0 {
			httperr.BadRequest(c, "missing_tenant", "Identificador do salão ausente ou inválido.")
			c.Abort()
			return
		}

		c.Set(ContextSalonID, uint(id))
		c.Next()
	}
}
