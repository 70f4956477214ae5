package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/inventory-manager-api/pkg/apiErrors"
)

// ExecutiveDashboard agrega os relatórios do painel executivo em uma única
// resposta
func ExecutiveDashboard(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard, err := service.ExecutiveDashboard()
		if err != nil {
			logrus.Error("Erro ao montar o painel executivo:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar o painel executivo", nil)
			return
		}

		respondJSON(w, http.StatusOK, envelope{Data: dashboard})
	}
}

// LowStockAlerts retorna os produtos abaixo do ponto de reposição
func LowStockAlerts(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		alerts, err := service.LowStockAlerts()
		if err != nil {
			logrus.Error("Erro ao listar alertas de estoque:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar alertas de estoque", nil)
			return
		}

		respondJSON(w, http.StatusOK, envelope{Data: alerts})
	}
}

// VendorPerformanceReport retorna o desempenho de entrega por fornecedor
func VendorPerformanceReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := service.VendorPerformance(queryInt(r, "months", 0))
		if err != nil {
			logrus.Error("Erro ao montar o relatório de fornecedores:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar o relatório de fornecedores", nil)
			return
		}

		respondJSON(w, http.StatusOK, envelope{Data: report})
	}
}

// WarehouseUtilizationReport retorna a ocupação por armazém
func WarehouseUtilizationReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := service.WarehouseUtilization()
		if err != nil {
			logrus.Error("Erro ao montar o relatório de armazéns:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar o relatório de armazéns", nil)
			return
		}

		respondJSON(w, http.StatusOK, envelope{Data: report})
	}
}

// DemandSupplyReport compara demanda prevista e estoque disponível por
// produto
func DemandSupplyReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := service.DemandVsSupply(queryInt(r, "months", 0))
		if err != nil {
			logrus.Error("Erro ao montar o relatório de demanda e oferta:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar o relatório de demanda e oferta", nil)
			return
		}

		respondJSON(w, http.StatusOK, envelope{Data: report})
	}
}

// SalesTrendsReport retorna a série mensal de vendas agregada
func SalesTrendsReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := service.SalesTrends(queryInt(r, "months", 0))
		if err != nil {
			logrus.Error("Erro ao montar o relatório de tendências:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar o relatório de tendências", nil)
			return
		}

		respondJSON(w, http.StatusOK, envelope{Data: report})
	}
}

// TopProductsReport retorna os produtos mais vendidos por receita
func TopProductsReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := service.TopProducts(queryInt(r, "months", 0), uint64(queryInt(r, "limit", 0)))
		if err != nil {
			logrus.Error("Erro ao montar o relatório de mais vendidos:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar o relatório de mais vendidos", nil)
			return
		}

		respondJSON(w, http.StatusOK, envelope{Data: report})
	}
}

// InventoryTurnoverReport retorna o giro de estoque por produto
func InventoryTurnoverReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := service.InventoryTurnover(queryInt(r, "months", 0))
		if err != nil {
			logrus.Error("Erro ao montar o relatório de giro de estoque:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar o relatório de giro de estoque", nil)
			return
		}

		respondJSON(w, http.StatusOK, envelope{Data: report})
	}
}

// CostAnalysisReport retorna custo, receita e margem por categoria
func CostAnalysisReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := service.CostAnalysis(queryInt(r, "months", 0))
		if err != nil {
			logrus.Error("Erro ao montar o relatório de custos:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar o relatório de custos", nil)
			return
		}

		respondJSON(w, http.StatusOK, envelope{Data: report})
	}
}

// ShipmentPerformanceReport retorna a pontualidade das remessas por armazém
func ShipmentPerformanceReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := service.ShipmentPerformance(queryInt(r, "months", 0))
		if err != nil {
			logrus.Error("Erro ao montar o relatório de remessas:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar o relatório de remessas", nil)
			return
		}

		respondJSON(w, http.StatusOK, envelope{Data: report})
	}
}
