package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-manager-api/internal/domain"
	"github.com/vfg2006/inventory-manager-api/internal/usecases/inventorying"
	"github.com/vfg2006/inventory-manager-api/pkg/apiErrors"
)

// ListVendors retorna todos os fornecedores com estatísticas agregadas
func ListVendors(service inventorying.Inventorier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendors, err := service.ListVendors()
		if err != nil {
			logrus.Error("Erro ao listar fornecedores:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar fornecedores", nil)
			return
		}

		respondJSON(w, http.StatusOK, envelope{Data: vendors})
	}
}

// GetVendor retorna um fornecedor pelo identificador
func GetVendor(service inventorying.Inventorier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendorID, err := pathID(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador de fornecedor inválido", nil)
			return
		}

		vendor, err := service.GetVendor(vendorID)
		if err != nil {
			if errors.Is(err, inventorying.ErrVendorNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Vendor not found", nil)
				return
			}
			logrus.Error("Erro ao buscar fornecedor:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar fornecedor", nil)
			return
		}

		respondJSON(w, http.StatusOK, envelope{Data: vendor})
	}
}

// GetVendorPerformance retorna as métricas de desempenho de um fornecedor
func GetVendorPerformance(service inventorying.Inventorier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendorID, err := pathID(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador de fornecedor inválido", nil)
			return
		}

		performance, err := service.GetVendorPerformance(vendorID)
		if err != nil {
			if errors.Is(err, inventorying.ErrVendorNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Vendor not found", nil)
				return
			}
			logrus.Error("Erro ao buscar desempenho do fornecedor:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar desempenho do fornecedor", nil)
			return
		}

		respondJSON(w, http.StatusOK, envelope{Data: performance})
	}
}

// CreateVendor cadastra um novo fornecedor
func CreateVendor(service inventorying.Inventorier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var vendor domain.Vendor
		if err := json.NewDecoder(r.Body).Decode(&vendor); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		vendorID, err := service.CreateVendor(&vendor)
		if err != nil {
			if errors.Is(err, inventorying.ErrVendorNameRequired) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}
			logrus.Error("Erro ao criar fornecedor:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar fornecedor", nil)
			return
		}

		vendor.ID = vendorID
		respondJSON(w, http.StatusCreated, envelope{Data: vendor, Message: "Vendor created successfully"})
	}
}

// UpdateVendor atualiza os dados de um fornecedor
func UpdateVendor(service inventorying.Inventorier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendorID, err := pathID(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador de fornecedor inválido", nil)
			return
		}

		var vendor domain.Vendor
		if err := json.NewDecoder(r.Body).Decode(&vendor); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if err := service.UpdateVendor(vendorID, &vendor); err != nil {
			switch {
			case errors.Is(err, inventorying.ErrVendorNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Vendor not found", nil)
			case errors.Is(err, inventorying.ErrVendorNameRequired):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
			default:
				logrus.Error("Erro ao atualizar fornecedor:", err)
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar fornecedor", nil)
			}
			return
		}

		respondJSON(w, http.StatusOK, envelope{Message: "Vendor updated successfully"})
	}
}

// DeleteVendor remove um fornecedor
func DeleteVendor(service inventorying.Inventorier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendorID, err := pathID(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador de fornecedor inválido", nil)
			return
		}

		if err := service.DeleteVendor(vendorID); err != nil {
			if errors.Is(err, inventorying.ErrVendorNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Vendor not found", nil)
				return
			}
			logrus.Error("Erro ao remover fornecedor:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover fornecedor", nil)
			return
		}

		respondJSON(w, http.StatusOK, envelope{Message: "Vendor deleted successfully"})
	}
}
