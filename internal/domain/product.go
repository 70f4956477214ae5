package domain

import "time"

// Product representa um produto do catálogo
type Product struct {
	ID           int64     `json:"product_id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	SKU          string    `json:"sku"`
	UnitPrice    float64   `json:"unit_price"`
	ReorderPoint int       `json:"reorder_point"`
	VendorID     int64     `json:"vendor_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StockLevel representa a posição de estoque de um produto em um armazém
type StockLevel struct {
	ProductID    int64 `json:"product_id"`
	WarehouseID  int64 `json:"warehouse_id"`
	CurrentStock int   `json:"current_stock"`
}

// ProductWithStock é um produto com o estoque consolidado por armazém
type ProductWithStock struct {
	Product
	VendorName       *string `json:"vendor_name,omitempty"`
	StockByWarehouse *string `json:"stock_by_warehouse,omitempty"`
}

// StockOperation define o sentido de uma movimentação de estoque
type StockOperation string

const (
	StockOperationAdd      StockOperation = "add"
	StockOperationSubtract StockOperation = "subtract"
)

// Valid indica se a operação de estoque é conhecida
func (op StockOperation) Valid() bool {
	return op == StockOperationAdd || op == StockOperationSubtract
}
