package domain

import "time"

// Warehouse representa um armazém com capacidade e utilização corrente
type Warehouse struct {
	ID                 int64     `json:"warehouse_id"`
	Name               string    `json:"name"`
	Location           string    `json:"location"`
	Capacity           int       `json:"capacity"`
	CurrentUtilization int       `json:"current_utilization"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// WarehouseWithUtilization agrega o armazém com o resumo de estoque
type WarehouseWithUtilization struct {
	Warehouse
	UniqueProducts        int     `json:"unique_products"`
	TotalStock            int     `json:"total_stock"`
	UtilizationPercentage float64 `json:"utilization_percentage"`
}
