package inventorying

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/inventory-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/inventory-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	vendorRepo    *mocks.MockVendorRepository
	warehouseRepo *mocks.MockWarehouseRepository
	productRepo   *mocks.MockProductRepository
}

func newTestService(t *testing.T) (Inventorier, *testMocks) {
	ctrl := gomock.NewController(t)
	m := &testMocks{
		vendorRepo:    mocks.NewMockVendorRepository(ctrl),
		warehouseRepo: mocks.NewMockWarehouseRepository(ctrl),
		productRepo:   mocks.NewMockProductRepository(ctrl),
	}
	return NewService(m.vendorRepo, m.warehouseRepo, m.productRepo), m
}

func TestCreateVendor(t *testing.T) {
	t.Run("cria fornecedor válido", func(t *testing.T) {
		service, m := newTestService(t)

		vendor := &domain.Vendor{Name: "Fornecedor A", Email: "a@exemplo.com"}
		m.vendorRepo.EXPECT().Create(vendor).Return(int64(7), nil)

		vendorID, err := service.CreateVendor(vendor)
		require.NoError(t, err)
		assert.Equal(t, int64(7), vendorID)
	})

	t.Run("rejeita fornecedor sem nome", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.CreateVendor(&domain.Vendor{})
		assert.ErrorIs(t, err, ErrVendorNameRequired)
	})
}

func TestGetVendor_NaoEncontrado(t *testing.T) {
	service, m := newTestService(t)

	m.vendorRepo.EXPECT().GetByID(int64(99)).Return(nil, nil)

	_, err := service.GetVendor(99)
	assert.ErrorIs(t, err, ErrVendorNotFound)
}

func TestUpdateVendor_NaoEncontrado(t *testing.T) {
	service, m := newTestService(t)

	vendor := &domain.Vendor{Name: "Fornecedor A"}
	m.vendorRepo.EXPECT().Update(int64(99), vendor).Return(false, nil)

	err := service.UpdateVendor(99, vendor)
	assert.ErrorIs(t, err, ErrVendorNotFound)
}

func TestCreateWarehouse_Validacao(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.CreateWarehouse(&domain.Warehouse{Name: "Central"})
	assert.ErrorIs(t, err, ErrWarehouseNameRequired)
}

func TestCreateProduct(t *testing.T) {
	t.Run("cria produto válido", func(t *testing.T) {
		service, m := newTestService(t)

		product := &domain.Product{Name: "Parafuso M4", SKU: "PF-M4", VendorID: 1}
		m.productRepo.EXPECT().Create(product).Return(int64(3), nil)

		productID, err := service.CreateProduct(product)
		require.NoError(t, err)
		assert.Equal(t, int64(3), productID)
	})

	t.Run("gera SKU quando omitido", func(t *testing.T) {
		service, m := newTestService(t)

		m.productRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(product *domain.Product) (int64, error) {
			assert.True(t, strings.HasPrefix(product.SKU, "SKU-"))
			return int64(4), nil
		})

		productID, err := service.CreateProduct(&domain.Product{Name: "Parafuso M4", VendorID: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(4), productID)
	})

	t.Run("rejeita produto sem nome", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.CreateProduct(&domain.Product{SKU: "PF-M4", VendorID: 1})
		assert.ErrorIs(t, err, ErrProductFieldsRequired)
	})
}

func TestMoveStock(t *testing.T) {
	t.Run("movimenta estoque de produto existente", func(t *testing.T) {
		service, m := newTestService(t)

		m.productRepo.EXPECT().GetByID(int64(1)).Return(&domain.Product{ID: 1}, nil)
		m.productRepo.EXPECT().
			UpsertStock(int64(1), int64(2), 10, domain.StockOperationAdd).
			Return(&domain.StockLevel{ProductID: 1, WarehouseID: 2, CurrentStock: 30}, nil)

		level, err := service.MoveStock(1, 2, 10, domain.StockOperationAdd)
		require.NoError(t, err)
		assert.Equal(t, 30, level.CurrentStock)
	})

	t.Run("rejeita operação desconhecida", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.MoveStock(1, 2, 10, domain.StockOperation("transfer"))
		assert.ErrorIs(t, err, ErrInvalidStockOperation)
	})

	t.Run("rejeita quantidade não positiva", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.MoveStock(1, 2, 0, domain.StockOperationAdd)
		assert.ErrorIs(t, err, ErrInvalidStockQuantity)
	})

	t.Run("rejeita produto inexistente", func(t *testing.T) {
		service, m := newTestService(t)

		m.productRepo.EXPECT().GetByID(int64(42)).Return(nil, nil)

		_, err := service.MoveStock(42, 2, 5, domain.StockOperationSubtract)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("propaga erro do repositório", func(t *testing.T) {
		service, m := newTestService(t)

		repoErr := errors.New("connection refused")
		m.productRepo.EXPECT().GetByID(int64(1)).Return(nil, repoErr)

		_, err := service.MoveStock(1, 2, 5, domain.StockOperationAdd)
		assert.ErrorIs(t, err, repoErr)
	})
}

func TestDeleteProduct_NaoEncontrado(t *testing.T) {
	service, m := newTestService(t)

	m.productRepo.EXPECT().Delete(int64(5)).Return(false, nil)

	err := service.DeleteProduct(5)
	assert.ErrorIs(t, err, ErrProductNotFound)
}
