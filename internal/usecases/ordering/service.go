package ordering

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-manager-api/infrastructure/repository"
	"github.com/vfg2006/inventory-manager-api/internal/domain"
	"github.com/vfg2006/inventory-manager-api/pkg/utils"
)

// Orderer expõe as operações de remessas e pedidos
type Orderer interface {
	ListShipments(shipmentType domain.ShipmentType, status string) ([]*domain.ShipmentWithDetails, error)
	GetShipment(shipmentID int64) (*domain.ShipmentWithDetails, []*domain.ShipmentItem, error)
	CreateShipment(ctx context.Context, shipment *domain.Shipment, items []*domain.ShipmentItem) (int64, error)
	UpdateShipmentStatus(shipmentID int64, status string, actualDelivery *string) error

	ListOrders(status domain.OrderStatus, vendorID *int64) ([]*domain.OrderWithDetails, error)
	GetOrder(orderID int64) (*domain.OrderWithDetails, []*domain.OrderItem, error)
	CreateOrder(ctx context.Context, order *domain.Order, items []*domain.OrderItem) (int64, error)
	UpdateOrderStatus(orderID int64, status domain.OrderStatus, actualDelivery *string) error
}

type Service struct {
	shipmentRepo repository.ShipmentRepository
	orderRepo    repository.OrderRepository
}

func NewService(
	shipmentRepo repository.ShipmentRepository,
	orderRepo repository.OrderRepository,
) Orderer {
	return &Service{
		shipmentRepo: shipmentRepo,
		orderRepo:    orderRepo,
	}
}

func (s *Service) ListShipments(shipmentType domain.ShipmentType, status string) ([]*domain.ShipmentWithDetails, error) {
	return s.shipmentRepo.List(shipmentType, status)
}

func (s *Service) GetShipment(shipmentID int64) (*domain.ShipmentWithDetails, []*domain.ShipmentItem, error) {
	shipment, err := s.shipmentRepo.GetByID(shipmentID)
	if err != nil {
		return nil, nil, err
	}
	if shipment == nil {
		return nil, nil, ErrShipmentNotFound
	}

	items, err := s.shipmentRepo.GetItems(shipmentID)
	if err != nil {
		return nil, nil, err
	}

	return shipment, items, nil
}

// CreateShipment valida e grava uma remessa com seus itens. Remessas de
// entrada já atualizam o estoque do armazém de destino
func (s *Service) CreateShipment(ctx context.Context, shipment *domain.Shipment, items []*domain.ShipmentItem) (int64, error) {
	if shipment == nil || shipment.WarehouseID == 0 {
		return 0, ErrShipmentFieldsRequired
	}
	if shipment.Type != domain.ShipmentTypeInbound && shipment.Type != domain.ShipmentTypeOutbound {
		return 0, ErrInvalidShipmentType
	}
	if err := validateItems(items); err != nil {
		return 0, err
	}

	// Remessa sem rastreio recebe um código gerado
	if shipment.TrackingNumber == nil || *shipment.TrackingNumber == "" {
		code, err := utils.GenerateID()
		if err != nil {
			return 0, fmt.Errorf("erro ao gerar código de rastreio: %w", err)
		}
		tracking := "TRK-" + strings.ToUpper(code)
		shipment.TrackingNumber = &tracking
	}

	shipmentID, err := s.shipmentRepo.CreateWithItems(ctx, shipment, items)
	if err != nil {
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"shipment_id": shipmentID,
		"type":        shipment.Type,
		"items":       len(items),
	}).Info("Remessa criada")

	return shipmentID, nil
}

func (s *Service) UpdateShipmentStatus(shipmentID int64, status string, actualDelivery *string) error {
	if status == "" {
		return ErrInvalidStatus
	}

	updated, err := s.shipmentRepo.UpdateStatus(shipmentID, status, actualDelivery)
	if err != nil {
		return err
	}
	if !updated {
		return ErrShipmentNotFound
	}
	return nil
}

func (s *Service) ListOrders(status domain.OrderStatus, vendorID *int64) ([]*domain.OrderWithDetails, error) {
	return s.orderRepo.List(status, vendorID)
}

func (s *Service) GetOrder(orderID int64) (*domain.OrderWithDetails, []*domain.OrderItem, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, nil, err
	}
	if order == nil {
		return nil, nil, ErrOrderNotFound
	}

	items, err := s.orderRepo.GetItems(orderID)
	if err != nil {
		return nil, nil, err
	}

	return order, items, nil
}

// CreateOrder valida e grava um pedido com seus itens. O total do pedido é
// recalculado a partir dos itens dentro da transação
func (s *Service) CreateOrder(ctx context.Context, order *domain.Order, items []*domain.OrderItem) (int64, error) {
	if order == nil || order.VendorID == 0 || order.OrderType == "" {
		return 0, ErrOrderFieldsRequired
	}
	if len(items) == 0 {
		return 0, ErrItemsRequired
	}
	for _, item := range items {
		if item == nil || item.ProductID == 0 || item.Quantity <= 0 || item.UnitPrice < 0 {
			return 0, ErrInvalidItem
		}
	}

	if order.Status == "" {
		order.Status = domain.OrderStatusPending
	}

	orderID, err := s.orderRepo.CreateWithItems(ctx, order, items)
	if err != nil {
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"order_id": orderID,
		"items":    len(items),
	}).Info("Pedido criado")

	return orderID, nil
}

func (s *Service) UpdateOrderStatus(orderID int64, status domain.OrderStatus, actualDelivery *string) error {
	switch status {
	case domain.OrderStatusPending, domain.OrderStatusConfirmed, domain.OrderStatusDelivered, domain.OrderStatusCancelled:
	default:
		return ErrInvalidStatus
	}

	updated, err := s.orderRepo.UpdateStatus(orderID, status, actualDelivery)
	if err != nil {
		return err
	}
	if !updated {
		return ErrOrderNotFound
	}
	return nil
}

func validateItems(items []*domain.ShipmentItem) error {
	if len(items) == 0 {
		return ErrItemsRequired
	}
	for _, item := range items {
		if item == nil || item.ProductID == 0 || item.Quantity <= 0 || item.UnitPrice < 0 {
			return ErrInvalidItem
		}
	}
	return nil
}
