package domain

import "time"

// OrderStatus define os estados possíveis de um pedido
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order representa um pedido de compra ou venda junto a um fornecedor
type Order struct {
	ID               int64       `json:"order_id"`
	VendorID         int64       `json:"vendor_id"`
	OrderType        string      `json:"order_type"`
	Status           OrderStatus `json:"status"`
	OrderDate        time.Time   `json:"order_date"`
	ExpectedDelivery *time.Time  `json:"expected_delivery,omitempty"`
	ActualDelivery   *time.Time  `json:"actual_delivery,omitempty"`
	TotalAmount      float64     `json:"total_amount"`
	CreatedAt        time.Time   `json:"created_at"`
}

// OrderItem representa um item dentro de um pedido
type OrderItem struct {
	ID          int64   `json:"item_id"`
	OrderID     int64   `json:"order_id"`
	ProductID   int64   `json:"product_id"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
	ProductName *string `json:"product_name,omitempty"`
	ProductSKU  *string `json:"sku,omitempty"`
}

// OrderWithDetails agrega o pedido com o nome do fornecedor e totais
type OrderWithDetails struct {
	Order
	VendorName      *string `json:"vendor_name,omitempty"`
	ItemCount       int     `json:"item_count"`
	CalculatedTotal float64 `json:"calculated_total"`
}
