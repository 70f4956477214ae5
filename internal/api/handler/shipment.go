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

// shipmentCreateRequest é o corpo de criação de remessa com itens
type shipmentCreateRequest struct {
	Shipment *domain.Shipment       `json:"shipment"`
	Items    []*domain.ShipmentItem `json:"items"`
}

// statusUpdateRequest é o corpo de atualização de status de remessas e pedidos
type statusUpdateRequest struct {
	Status         string  `json:"status"`
	ActualDelivery *string `json:"actual_delivery,omitempty"`
}

// ListShipments retorna as remessas, com filtros opcionais de tipo e status
func ListShipments(service ordering.Orderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shipmentType := domain.ShipmentType(r.URL.Query().Get("type"))
		status := r.URL.Query().Get("status")

		shipments, err := service.ListShipments(shipmentType, status)
		if err != nil {
			logrus.Error("Erro ao listar remessas:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar remessas", nil)
			return
		}

		respondJSON(w, http.StatusOK, envelope{Data: shipments})
	}
}

// GetShipment retorna uma remessa com seus itens
func GetShipment(service ordering.Orderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shipmentID, err := pathID(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador de remessa inválido", nil)
			return
		}

		shipment, items, err := service.GetShipment(shipmentID)
		if err != nil {
			if errors.Is(err, ordering.ErrShipmentNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Shipment not found", nil)
				return
			}
			logrus.Error("Erro ao buscar remessa:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar remessa", nil)
			return
		}

		respondJSON(w, http.StatusOK, envelope{Data: shipment, Items: items})
	}
}

// CreateShipment cria uma remessa com itens. Remessas de entrada atualizam
// o estoque do armazém de destino
func CreateShipment(service ordering.Orderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req shipmentCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if req.Shipment == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Missing shipment data", nil)
			return
		}

		shipmentID, err := service.CreateShipment(r.Context(), req.Shipment, req.Items)
		if err != nil {
			switch {
			case errors.Is(err, ordering.ErrShipmentFieldsRequired),
				errors.Is(err, ordering.ErrInvalidShipmentType),
				errors.Is(err, ordering.ErrItemsRequired),
				errors.Is(err, ordering.ErrInvalidItem):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
			default:
				logrus.Error("Erro ao criar remessa:", err)
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar remessa", nil)
			}
			return
		}

		req.Shipment.ID = shipmentID
		respondJSON(w, http.StatusCreated, envelope{Data: req.Shipment, Message: "Shipment created successfully"})
	}
}

// UpdateShipmentStatus atualiza o status e a entrega efetiva de uma remessa
func UpdateShipmentStatus(service ordering.Orderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shipmentID, err := pathID(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador de remessa inválido", nil)
			return
		}

		var req statusUpdateRequest
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

		if err := service.UpdateShipmentStatus(shipmentID, req.Status, req.ActualDelivery); err != nil {
			switch {
			case errors.Is(err, ordering.ErrShipmentNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Shipment not found", nil)
			case errors.Is(err, ordering.ErrInvalidStatus):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			default:
				logrus.Error("Erro ao atualizar status da remessa:", err)
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar status da remessa", nil)
			}
			return
		}

		respondJSON(w, http.StatusOK, envelope{Message: "Shipment status updated successfully"})
	}
}
