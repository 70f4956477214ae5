package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-manager-api/internal/domain"
	"github.com/vfg2006/inventory-manager-api/internal/usecases/inventorying"
	"github.com/vfg2006/inventory-manager-api/pkg/apiErrors"
)

// stockUpdateRequest é o corpo da movimentação manual de estoque
type stockUpdateRequest struct {
	WarehouseID int64                 `json:"warehouse_id"`
	Quantity    int                   `json:"quantity"`
	Operation   domain.StockOperation `json:"operation"`
}

// ListProducts retorna os produtos com o estoque consolidado, com filtros
// opcionais de categoria e armazém na query string
func ListProducts(service inventorying.Inventorier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := r.URL.Query().Get("category")
		warehouseID := queryInt64Ptr(r, "warehouse_id")

		products, err := service.ListProducts(category, warehouseID)
		if err != nil {
			logrus.Error("Erro ao listar produtos:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar produtos", nil)
			return
		}

		respondJSON(w, http.StatusOK, envelope{Data: products})
	}
}

// GetProduct retorna um produto pelo identificador
func GetProduct(service inventorying.Inventorier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := pathID(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador de produto inválido", nil)
			return
		}

		product, err := service.GetProduct(productID)
		if err != nil {
			if errors.Is(err, inventorying.ErrProductNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Product not found", nil)
				return
			}
			logrus.Error("Erro ao buscar produto:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar produto", nil)
			return
		}

		respondJSON(w, http.StatusOK, envelope{Data: product})
	}
}

// CreateProduct cadastra um novo produto
func CreateProduct(service inventorying.Inventorier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var product domain.Product
		if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		productID, err := service.CreateProduct(&product)
		if err != nil {
			if errors.Is(err, inventorying.ErrProductFieldsRequired) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}
			logrus.Error("Erro ao criar produto:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar produto", nil)
			return
		}

		product.ID = productID
		respondJSON(w, http.StatusCreated, envelope{Data: product, Message: "Product created successfully"})
	}
}

// UpdateProduct atualiza os dados de um produto
func UpdateProduct(service inventorying.Inventorier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := pathID(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador de produto inválido", nil)
			return
		}

		var product domain.Product
		if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if err := service.UpdateProduct(productID, &product); err != nil {
			switch {
			case errors.Is(err, inventorying.ErrProductNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Product not found", nil)
			case errors.Is(err, inventorying.ErrProductFieldsRequired):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
			default:
				logrus.Error("Erro ao atualizar produto:", err)
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar produto", nil)
			}
			return
		}

		respondJSON(w, http.StatusOK, envelope{Message: "Product updated successfully"})
	}
}

// DeleteProduct remove um produto
func DeleteProduct(service inventorying.Inventorier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := pathID(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador de produto inválido", nil)
			return
		}

		if err := service.DeleteProduct(productID); err != nil {
			if errors.Is(err, inventorying.ErrProductNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Product not found", nil)
				return
			}
			logrus.Error("Erro ao remover produto:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover produto", nil)
			return
		}

		respondJSON(w, http.StatusOK, envelope{Message: "Product deleted successfully"})
	}
}

// UpdateProductStock aplica uma movimentação manual de estoque a um produto
func UpdateProductStock(service inventorying.Inventorier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := pathID(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Identificador de produto inválido", nil)
			return
		}

		var req stockUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if req.WarehouseID == 0 || req.Quantity == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Missing warehouse_id or quantity", nil)
			return
		}

		if req.Operation == "" {
			req.Operation = domain.StockOperationAdd
		}

		level, err := service.MoveStock(productID, req.WarehouseID, req.Quantity, req.Operation)
		if err != nil {
			switch {
			case errors.Is(err, inventorying.ErrProductNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Product not found", nil)
			case errors.Is(err, inventorying.ErrInvalidStockOperation),
				errors.Is(err, inventorying.ErrInvalidStockQuantity),
				errors.Is(err, inventorying.ErrStockTargetRequired):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			default:
				logrus.Error("Erro ao movimentar estoque:", err)
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao movimentar estoque", nil)
			}
			return
		}

		respondJSON(w, http.StatusOK, envelope{Data: level, Message: "Stock updated successfully"})
	}
}
