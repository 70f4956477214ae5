package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-manager-api/internal/domain"
	"github.com/vfg2006/inventory-manager-api/internal/usecases/inventorying"
	"github.com/vfg2006/inventory-manager-api/pkg/apiErrors"
)

// ListWarehouses retorna todos os armazéns com o resumo de utilização
func ListWarehouses(service inventorying.Inventorier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		warehouses, err := service.ListWarehouses()
		if err != nil {
			logrus.Error("Erro ao listar armazéns:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar armazéns", nil)
			return
		}

		respondJSON(w, http.StatusOK, envelope{Data: warehouses})
	}
}

// GetWarehouse retorna um armazém pelo identificador
func GetWarehouse(service inventorying.Inventorier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		warehouseID, err := pathID(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador de armazém inválido", nil)
			return
		}

		warehouse, err := service.GetWarehouse(warehouseID)
		if err != nil {
			if errors.Is(err, inventorying.ErrWarehouseNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Warehouse not found", nil)
				return
			}
			logrus.Error("Erro ao buscar armazém:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar armazém", nil)
			return
		}

		respondJSON(w, http.StatusOK, envelope{Data: warehouse})
	}
}

// CreateWarehouse cadastra um novo armazém
func CreateWarehouse(service inventorying.Inventorier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var warehouse domain.Warehouse
		if err := json.NewDecoder(r.Body).Decode(&warehouse); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		warehouseID, err := service.CreateWarehouse(&warehouse)
		if err != nil {
			if errors.Is(err, inventorying.ErrWarehouseNameRequired) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}
			logrus.Error("Erro ao criar armazém:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar armazém", nil)
			return
		}

		warehouse.ID = warehouseID
		respondJSON(w, http.StatusCreated, envelope{Data: warehouse, Message: "Warehouse created successfully"})
	}
}

// UpdateWarehouse atualiza os dados de um armazém
func UpdateWarehouse(service inventorying.Inventorier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		warehouseID, err := pathID(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador de armazém inválido", nil)
			return
		}

		var warehouse domain.Warehouse
		if err := json.NewDecoder(r.Body).Decode(&warehouse); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if err := service.UpdateWarehouse(warehouseID, &warehouse); err != nil {
			switch {
			case errors.Is(err, inventorying.ErrWarehouseNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Warehouse not found", nil)
			case errors.Is(err, inventorying.ErrWarehouseNameRequired):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
			default:
				logrus.Error("Erro ao atualizar armazém:", err)
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar armazém", nil)
			}
			return
		}

		respondJSON(w, http.StatusOK, envelope{Message: "Warehouse updated successfully"})
	}
}

// DeleteWarehouse remove um armazém
func DeleteWarehouse(service inventorying.Inventorier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		warehouseID, err := pathID(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador de armazém inválido", nil)
			return
		}

		if err := service.DeleteWarehouse(warehouseID); err != nil {
			if errors.Is(err, inventorying.ErrWarehouseNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Warehouse not found", nil)
				return
			}
			logrus.Error("Erro ao remover armazém:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover armazém", nil)
			return
		}

		respondJSON(w, http.StatusOK, envelope{Message: "Warehouse deleted successfully"})
	}
}
