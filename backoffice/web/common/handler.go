package common

import (
	"database/sql"
	"net"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"kasira.com/kasira/core"
)

type Handler struct {
	Dm *core.DatabaseManager
}

// GetHostname strips the port; the remaining hostname selects the
// location schema ("menteng.kasira.net" routes to schema "menteng").
func GetHostname(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}

func (h *Handler) GetDB(r *gin.Context) (*gorm.DB, *sql.Conn, error) {
	hostname := GetHostname(r.Request.Host)
	return h.Dm.GetDB(r.Request.Context(), hostname)
}
