package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/inventory-manager-api/infrastructure/database/postgres"
)

type healthStatus struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// HealthcheckHandler reporta a saúde do serviço e da conexão com o banco
func HealthcheckHandler(conn postgres.Conn) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		health := healthStatus{
			Status:    "healthy",
			Database:  "connected",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}

		status := http.StatusOK
		if err := conn.Ping(r.Context()); err != nil {
			health.Status = "unhealthy"
			health.Database = "disconnected"
			status = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(health)
	}
}
