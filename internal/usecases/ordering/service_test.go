package ordering

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/inventory-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/inventory-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (Orderer, *mocks.MockShipmentRepository, *mocks.MockOrderRepository) {
	ctrl := gomock.NewController(t)
	shipmentRepo := mocks.NewMockShipmentRepository(ctrl)
	orderRepo := mocks.NewMockOrderRepository(ctrl)
	return NewService(shipmentRepo, orderRepo), shipmentRepo, orderRepo
}

func TestCreateShipment(t *testing.T) {
	ctx := context.Background()

	t.Run("cria remessa de entrada com itens", func(t *testing.T) {
		service, shipmentRepo, _ := newTestService(t)

		shipment := &domain.Shipment{Type: domain.ShipmentTypeInbound, WarehouseID: 1, Status: "pending"}
		items := []*domain.ShipmentItem{
			{ProductID: 1, Quantity: 10, UnitPrice: 2.5},
			{ProductID: 2, Quantity: 4, UnitPrice: 9.9},
		}

		shipmentRepo.EXPECT().CreateWithItems(ctx, shipment, items).Return(int64(11), nil)

		shipmentID, err := service.CreateShipment(ctx, shipment, items)
		require.NoError(t, err)
		assert.Equal(t, int64(11), shipmentID)
	})

	t.Run("gera código de rastreio quando omitido", func(t *testing.T) {
		service, shipmentRepo, _ := newTestService(t)

		shipment := &domain.Shipment{Type: domain.ShipmentTypeOutbound, WarehouseID: 2, Status: "pending"}
		items := []*domain.ShipmentItem{{ProductID: 3, Quantity: 1, UnitPrice: 7}}

		shipmentRepo.EXPECT().
			CreateWithItems(ctx, gomock.Any(), items).
			DoAndReturn(func(_ context.Context, s *domain.Shipment, _ []*domain.ShipmentItem) (int64, error) {
				require.NotNil(t, s.TrackingNumber)
				assert.True(t, strings.HasPrefix(*s.TrackingNumber, "TRK-"))
				return int64(12), nil
			})

		_, err := service.CreateShipment(ctx, shipment, items)
		require.NoError(t, err)
	})

	t.Run("rejeita tipo desconhecido", func(t *testing.T) {
		service, _, _ := newTestService(t)

		shipment := &domain.Shipment{Type: "transfer", WarehouseID: 1}
		items := []*domain.ShipmentItem{{ProductID: 1, Quantity: 1, UnitPrice: 1}}

		_, err := service.CreateShipment(ctx, shipment, items)
		assert.ErrorIs(t, err, ErrInvalidShipmentType)
	})

	t.Run("rejeita remessa sem itens", func(t *testing.T) {
		service, _, _ := newTestService(t)

		shipment := &domain.Shipment{Type: domain.ShipmentTypeOutbound, WarehouseID: 1}

		_, err := service.CreateShipment(ctx, shipment, nil)
		assert.ErrorIs(t, err, ErrItemsRequired)
	})

	t.Run("rejeita item sem quantidade", func(t *testing.T) {
		service, _, _ := newTestService(t)

		shipment := &domain.Shipment{Type: domain.ShipmentTypeInbound, WarehouseID: 1}
		items := []*domain.ShipmentItem{{ProductID: 1, Quantity: 0, UnitPrice: 1}}

		_, err := service.CreateShipment(ctx, shipment, items)
		assert.ErrorIs(t, err, ErrInvalidItem)
	})
}

func TestGetShipment(t *testing.T) {
	t.Run("retorna remessa com itens", func(t *testing.T) {
		service, shipmentRepo, _ := newTestService(t)

		details := &domain.ShipmentWithDetails{Shipment: domain.Shipment{ID: 11}}
		items := []*domain.ShipmentItem{{ID: 1, ShipmentID: 11}}

		shipmentRepo.EXPECT().GetByID(int64(11)).Return(details, nil)
		shipmentRepo.EXPECT().GetItems(int64(11)).Return(items, nil)

		shipment, gotItems, err := service.GetShipment(11)
		require.NoError(t, err)
		assert.Equal(t, int64(11), shipment.ID)
		assert.Len(t, gotItems, 1)
	})

	t.Run("remessa inexistente", func(t *testing.T) {
		service, shipmentRepo, _ := newTestService(t)

		shipmentRepo.EXPECT().GetByID(int64(99)).Return(nil, nil)

		_, _, err := service.GetShipment(99)
		assert.ErrorIs(t, err, ErrShipmentNotFound)
	})
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("cria pedido com status pendente por omissão", func(t *testing.T) {
		service, _, orderRepo := newTestService(t)

		order := &domain.Order{VendorID: 1, OrderType: "purchase"}
		items := []*domain.OrderItem{{ProductID: 1, Quantity: 2, UnitPrice: 5}}

		orderRepo.EXPECT().
			CreateWithItems(ctx, order, items).
			DoAndReturn(func(_ context.Context, o *domain.Order, _ []*domain.OrderItem) (int64, error) {
				assert.Equal(t, domain.OrderStatusPending, o.Status)
				return int64(21), nil
			})

		orderID, err := service.CreateOrder(ctx, order, items)
		require.NoError(t, err)
		assert.Equal(t, int64(21), orderID)
	})

	t.Run("rejeita pedido sem fornecedor", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.CreateOrder(ctx, &domain.Order{OrderType: "purchase"}, []*domain.OrderItem{{ProductID: 1, Quantity: 1, UnitPrice: 1}})
		assert.ErrorIs(t, err, ErrOrderFieldsRequired)
	})

	t.Run("propaga erro da transação", func(t *testing.T) {
		service, _, orderRepo := newTestService(t)

		repoErr := errors.New("deadlock detected")
		order := &domain.Order{VendorID: 1, OrderType: "purchase"}
		items := []*domain.OrderItem{{ProductID: 1, Quantity: 1, UnitPrice: 1}}

		orderRepo.EXPECT().CreateWithItems(ctx, order, items).Return(int64(0), repoErr)

		_, err := service.CreateOrder(ctx, order, items)
		assert.ErrorIs(t, err, repoErr)
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	t.Run("atualiza status válido", func(t *testing.T) {
		service, _, orderRepo := newTestService(t)

		orderRepo.EXPECT().UpdateStatus(int64(21), domain.OrderStatusDelivered, nil).Return(true, nil)

		err := service.UpdateOrderStatus(21, domain.OrderStatusDelivered, nil)
		assert.NoError(t, err)
	})

	t.Run("rejeita status desconhecido", func(t *testing.T) {
		service, _, _ := newTestService(t)

		err := service.UpdateOrderStatus(21, domain.OrderStatus("archived"), nil)
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("pedido inexistente", func(t *testing.T) {
		service, _, orderRepo := newTestService(t)

		orderRepo.EXPECT().UpdateStatus(int64(99), domain.OrderStatusCancelled, nil).Return(false, nil)

		err := service.UpdateOrderStatus(99, domain.OrderStatusCancelled, nil)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}
