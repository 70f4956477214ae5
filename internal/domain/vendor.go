package domain

import "time"

// Vendor representa um fornecedor cadastrado no sistema
type Vendor struct {
	ID            int64     `json:"vendor_id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       *string   `json:"address,omitempty"`
	Rating        *float64  `json:"rating,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// VendorWithStats é um fornecedor acompanhado das estatísticas agregadas de
// produtos e pedidos
type VendorWithStats struct {
	Vendor
	ProductCount int     `json:"product_count"`
	OrderCount   int     `json:"order_count"`
	TotalSales   float64 `json:"total_sales"`
}

// VendorPerformance contém as métricas de desempenho de um fornecedor
type VendorPerformance struct {
	Name            string  `json:"name"`
	TotalOrders     int     `json:"total_orders"`
	TotalSales      float64 `json:"total_sales"`
	AvgOrderValue   float64 `json:"avg_order_value"`
	DeliveredOrders int     `json:"delivered_orders"`
	DeliveryRate    float64 `json:"delivery_rate"`
}
