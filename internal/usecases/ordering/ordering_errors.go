package ordering

import "errors"

// Erros específicos para o contexto de remessas e pedidos
var (
	// Erros de validação
	ErrShipmentFieldsRequired = errors.New("shipment type and warehouse are required")
	ErrInvalidShipmentType    = errors.New("shipment type must be inbound or outbound")
	ErrOrderFieldsRequired    = errors.New("order vendor and type are required")
	ErrItemsRequired          = errors.New("at least one item is required")
	ErrInvalidItem            = errors.New("items must have product, quantity and unit price")
	ErrInvalidStatus          = errors.New("invalid status")

	// Erros de consistência
	ErrShipmentNotFound = errors.New("shipment not found")
	ErrOrderNotFound    = errors.New("order not found")
)
