package inventorying

import "errors"

// Erros específicos para o contexto de inventário
var (
	// Erros de validação
	ErrVendorNameRequired     = errors.New("vendor name is required")
	ErrWarehouseNameRequired  = errors.New("warehouse name and location are required")
	ErrProductFieldsRequired  = errors.New("product name, sku and vendor are required")
	ErrInvalidStockOperation  = errors.New("operation must be add or subtract")
	ErrInvalidStockQuantity   = errors.New("quantity must be a positive number")
	ErrStockTargetRequired    = errors.New("product and warehouse are required")

	// Erros de consistência
	ErrVendorNotFound    = errors.New("vendor not found")
	ErrWarehouseNotFound = errors.New("warehouse not found")
	ErrProductNotFound   = errors.New("product not found")
)
