package inventorying

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-manager-api/infrastructure/repository"
	"github.com/vfg2006/inventory-manager-api/internal/domain"
	"github.com/vfg2006/inventory-manager-api/pkg/utils"
)

// Inventorier expõe as operações de catálogo e estoque
type Inventorier interface {
	ListVendors() ([]*domain.VendorWithStats, error)
	GetVendor(vendorID int64) (*domain.Vendor, error)
	GetVendorPerformance(vendorID int64) (*domain.VendorPerformance, error)
	CreateVendor(vendor *domain.Vendor) (int64, error)
	UpdateVendor(vendorID int64, vendor *domain.Vendor) error
	DeleteVendor(vendorID int64) error

	ListWarehouses() ([]*domain.WarehouseWithUtilization, error)
	GetWarehouse(warehouseID int64) (*domain.Warehouse, error)
	CreateWarehouse(warehouse *domain.Warehouse) (int64, error)
	UpdateWarehouse(warehouseID int64, warehouse *domain.Warehouse) error
	DeleteWarehouse(warehouseID int64) error

	ListProducts(category string, warehouseID *int64) ([]*domain.ProductWithStock, error)
	GetProduct(productID int64) (*domain.Product, error)
	CreateProduct(product *domain.Product) (int64, error)
	UpdateProduct(productID int64, product *domain.Product) error
	DeleteProduct(productID int64) error
	MoveStock(productID, warehouseID int64, quantity int, operation domain.StockOperation) (*domain.StockLevel, error)
}

type Service struct {
	vendorRepo    repository.VendorRepository
	warehouseRepo repository.WarehouseRepository
	productRepo   repository.ProductRepository
}

func NewService(
	vendorRepo repository.VendorRepository,
	warehouseRepo repository.WarehouseRepository,
	productRepo repository.ProductRepository,
) Inventorier {
	return &Service{
		vendorRepo:    vendorRepo,
		warehouseRepo: warehouseRepo,
		productRepo:   productRepo,
	}
}

func (s *Service) ListVendors() ([]*domain.VendorWithStats, error) {
	return s.vendorRepo.ListWithStats()
}

func (s *Service) GetVendor(vendorID int64) (*domain.Vendor, error) {
	vendor, err := s.vendorRepo.GetByID(vendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, ErrVendorNotFound
	}
	return vendor, nil
}

func (s *Service) GetVendorPerformance(vendorID int64) (*domain.VendorPerformance, error) {
	performance, err := s.vendorRepo.GetPerformance(vendorID)
	if err != nil {
		return nil, err
	}
	if performance == nil {
		return nil, ErrVendorNotFound
	}
	return performance, nil
}

func (s *Service) CreateVendor(vendor *domain.Vendor) (int64, error) {
	if vendor == nil || vendor.Name == "" {
		return 0, ErrVendorNameRequired
	}

	vendorID, err := s.vendorRepo.Create(vendor)
	if err != nil {
		return 0, err
	}

	logrus.WithField("vendor_id", vendorID).Info("Fornecedor criado")

	return vendorID, nil
}

func (s *Service) UpdateVendor(vendorID int64, vendor *domain.Vendor) error {
	if vendor == nil || vendor.Name == "" {
		return ErrVendorNameRequired
	}

	updated, err := s.vendorRepo.Update(vendorID, vendor)
	if err != nil {
		return err
	}
	if !updated {
		return ErrVendorNotFound
	}
	return nil
}

func (s *Service) DeleteVendor(vendorID int64) error {
	deleted, err := s.vendorRepo.Delete(vendorID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrVendorNotFound
	}
	return nil
}

func (s *Service) ListWarehouses() ([]*domain.WarehouseWithUtilization, error) {
	return s.warehouseRepo.ListWithUtilization()
}

func (s *Service) GetWarehouse(warehouseID int64) (*domain.Warehouse, error) {
	warehouse, err := s.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, ErrWarehouseNotFound
	}
	return warehouse, nil
}

func (s *Service) CreateWarehouse(warehouse *domain.Warehouse) (int64, error) {
	if warehouse == nil || warehouse.Name == "" || warehouse.Location == "" {
		return 0, ErrWarehouseNameRequired
	}

	warehouseID, err := s.warehouseRepo.Create(warehouse)
	if err != nil {
		return 0, err
	}

	logrus.WithField("warehouse_id", warehouseID).Info("Armazém criado")

	return warehouseID, nil
}

func (s *Service) UpdateWarehouse(warehouseID int64, warehouse *domain.Warehouse) error {
	if warehouse == nil || warehouse.Name == "" || warehouse.Location == "" {
		return ErrWarehouseNameRequired
	}

	updated, err := s.warehouseRepo.Update(warehouseID, warehouse)
	if err != nil {
		return err
	}
	if !updated {
		return ErrWarehouseNotFound
	}
	return nil
}

func (s *Service) DeleteWarehouse(warehouseID int64) error {
	deleted, err := s.warehouseRepo.Delete(warehouseID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrWarehouseNotFound
	}
	return nil
}

func (s *Service) ListProducts(category string, warehouseID *int64) ([]*domain.ProductWithStock, error) {
	return s.productRepo.ListWithStock(category, warehouseID)
}

func (s *Service) GetProduct(productID int64) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *Service) CreateProduct(product *domain.Product) (int64, error) {
	if product == nil || product.Name == "" || product.VendorID == 0 {
		return 0, ErrProductFieldsRequired
	}

	// SKU omitido recebe um identificador curto gerado
	if product.SKU == "" {
		sku, err := utils.GenerateID()
		if err != nil {
			return 0, fmt.Errorf("erro ao gerar SKU: %w", err)
		}
		product.SKU = "SKU-" + sku
	}

	productID, err := s.productRepo.Create(product)
	if err != nil {
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"product_id": productID,
		"sku":        product.SKU,
	}).Info("Produto criado")

	return productID, nil
}

func (s *Service) UpdateProduct(productID int64, product *domain.Product) error {
	if product == nil || product.Name == "" || product.SKU == "" || product.VendorID == 0 {
		return ErrProductFieldsRequired
	}

	updated, err := s.productRepo.Update(productID, product)
	if err != nil {
		return err
	}
	if !updated {
		return ErrProductNotFound
	}
	return nil
}

func (s *Service) DeleteProduct(productID int64) error {
	deleted, err := s.productRepo.Delete(productID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProductNotFound
	}
	return nil
}

// MoveStock aplica uma movimentação manual de estoque depois de validar a
// operação e a existência do produto
func (s *Service) MoveStock(productID, warehouseID int64, quantity int, operation domain.StockOperation) (*domain.StockLevel, error) {
	if productID == 0 || warehouseID == 0 {
		return nil, ErrStockTargetRequired
	}
	if quantity <= 0 {
		return nil, ErrInvalidStockQuantity
	}
	if !operation.Valid() {
		return nil, ErrInvalidStockOperation
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	level, err := s.productRepo.UpsertStock(productID, warehouseID, quantity, operation)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"product_id":    productID,
		"warehouse_id":  warehouseID,
		"operation":     operation,
		"current_stock": level.CurrentStock,
	}).Info("Estoque movimentado")

	return level, nil
}
