package handler

import (
	"context"
	"net/http"
	"os"
	"time"

	"uniformes/internal/infra"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Health reports database connectivity, whether the schema has been migrated
// and whether the receipt directory exists. Only a reachable, migrated
// database makes the service healthy: receipts can still be created when the
// directory is missing.
func Health(db *gorm.DB, pdfDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		resp := gin.H{"db": "connected", "schema": "unknown", "pdf_storage": "ok"}
		healthy := true

		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			resp["db"] = "error"
			healthy = false
		} else if faltan := infra.TablasFaltantes(db.WithContext(ctx)); len(faltan) > 0 {
			resp["schema"] = "pending"
			resp["missing_tables"] = faltan
			healthy = false
		} else {
			resp["schema"] = "migrated"
		}

		if info, err := os.Stat(pdfDir); err != nil || !info.IsDir() {
			resp["pdf_storage"] = "missing"
		}

		status := http.StatusOK
		if !healthy {
			status = http.StatusServiceUnavailable
		}
		resp["ok"] = healthy
		c.JSON(status, resp)
	}
}
