package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-manager-api/internal/domain"
	"github.com/vfg2006/inventory-manager-api/internal/usecases/ordering"
	"github.com/vfg2006/inventory-manager-api/pkg/apiErrors"
	"github.com/vfg2006/inventory-manager-api/pkg/utils"
)

// orderCreateRequest é o corpo de criação de pedido com itens
type orderCreateRequest struct {
	Order *domain.Order       `json:"order"`
	Items []*domain.OrderItem `json:"items"`
}

// orderStatusRequest é o corpo de atualização de status de pedido
type orderStatusRequest struct {
	Status         domain.OrderStatus `json:"status"`
	ActualDelivery *string            `json:"actual_delivery,omitempty"`
}

// ListOrders retorna os pedidos, com filtros opcionais de status e fornecedor
func ListOrders(service ordering.Orderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := domain.OrderStatus(r.URL.Query().Get("status"))
		vendorID := queryInt64Ptr(r, "vendor_id")

		orders, err := service.ListOrders(status, vendorID)
		if err != nil {
			logrus.Error("Erro ao listar pedidos:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar pedidos", nil)
			return
		}

		respondJSON(w, http.StatusOK, envelope{Data: orders})
	}
}

// GetOrder retorna um pedido com seus itens
func GetOrder(service ordering.Orderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := pathID(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador de pedido inválido", nil)
			return
		}

		order, items, err := service.GetOrder(orderID)
		if err != nil {
			if errors.Is(err, ordering.ErrOrderNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Order not found", nil)
				return
			}
			logrus.Error("Erro ao buscar pedido:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar pedido", nil)
			return
		}

		respondJSON(w, http.StatusOK, envelope{Data: order, Items: items})
	}
}

// CreateOrder cria um pedido com itens, recalculando o total
func CreateOrder(service ordering.Orderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req orderCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if req.Order == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Missing order data", nil)
			return
		}

		orderID, err := service.CreateOrder(r.Context(), req.Order, req.Items)
		if err != nil {
			switch {
			case errors.Is(err, ordering.ErrOrderFieldsRequired),
				errors.Is(err, ordering.ErrItemsRequired),
				errors.Is(err, ordering.ErrInvalidItem):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
			default:
				logrus.Error("Erro ao criar pedido:", err)
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar pedido", nil)
			}
			return
		}

		req.Order.ID = orderID
		respondJSON(w, http.StatusCreated, envelope{Data: req.Order, Message: "Order created successfully"})
	}
}

// UpdateOrderStatus atualiza o status e a entrega efetiva de um pedido
func UpdateOrderStatus(service ordering.Orderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := pathID(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador de pedido inválido", nil)
			return
		}

		var req orderStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if req.ActualDelivery != nil {
			if _, err := utils.ParseDate(*req.ActualDelivery); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid actual_delivery date", nil)
				return
			}
		}

		if err := service.UpdateOrderStatus(orderID, req.Status, req.ActualDelivery); err != nil {
			switch {
			case errors.Is(err, ordering.ErrOrderNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Order not found", nil)
			case errors.Is(err, ordering.ErrInvalidStatus):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			default:
				logrus.Error("Erro ao atualizar status do pedido:", err)
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar status do pedido", nil)
			}
			return
		}

		respondJSON(w, http.StatusOK, envelope{Message: "Order status updated successfully"})
	}
}
