package domain

import "time"

// ShipmentType define o sentido logístico de uma remessa
type ShipmentType string

const (
	ShipmentTypeInbound  ShipmentType = "inbound"
	ShipmentTypeOutbound ShipmentType = "outbound"
)

// Shipment representa uma remessa de produtos de/para um armazém
type Shipment struct {
	ID               int64        `json:"shipment_id"`
	Type             ShipmentType `json:"type"`
	Status           string       `json:"status"`
	WarehouseID      int64        `json:"warehouse_id"`
	VendorID         *int64       `json:"vendor_id,omitempty"`
	Carrier          *string      `json:"carrier,omitempty"`
	TrackingNumber   *string      `json:"tracking_number,omitempty"`
	ShipmentDate     time.Time    `json:"shipment_date"`
	ExpectedDelivery *time.Time   `json:"expected_delivery,omitempty"`
	ActualDelivery   *time.Time   `json:"actual_delivery,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
}

// ShipmentItem representa um item dentro de uma remessa
type ShipmentItem struct {
	ID          int64   `json:"item_id"`
	ShipmentID  int64   `json:"shipment_id"`
	ProductID   int64   `json:"product_id"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
	ProductName *string `json:"product_name,omitempty"`
	ProductSKU  *string `json:"sku,omitempty"`
}

// ShipmentWithDetails agrega a remessa com nomes e totais calculados
type ShipmentWithDetails struct {
	Shipment
	WarehouseName *string `json:"warehouse_name,omitempty"`
	VendorName    *string `json:"vendor_name,omitempty"`
	ItemCount     int     `json:"item_count"`
	TotalValue    float64 `json:"total_value"`
}
