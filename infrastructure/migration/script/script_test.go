package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findSchemaStatement(t *testing.T, table string) string {
	t.Helper()
	for _, stmt := range schemaStatements {
		if strings.Contains(stmt, "CREATE TABLE IF NOT EXISTS "+table) {
			return stmt
		}
	}
	t.Fatalf("definição da tabela %s não encontrada", table)
	return ""
}

func TestSalesHistorySchema(t *testing.T) {
	stmt := findSchemaStatement(t, "sales_history")

	// Colunas lidas pelos relatórios de vendas e pelo motor de previsão
	for _, column := range []string{"quantity_sold", "sale_date", "unit_price", "total_revenue"} {
		assert.Contains(t, stmt, column, "coluna %s ausente no schema de sales_history", column)
	}
}

func TestMonthlyQuantity(t *testing.T) {
	t.Run("aplica o fator sazonal do mês", func(t *testing.T) {
		assert.Equal(t, 90, monthlyQuantity(100, time.January, 0))
		assert.Equal(t, 118, monthlyQuantity(100, time.August, 0))
	})

	t.Run("cresce ao longo da série", func(t *testing.T) {
		assert.Equal(t, 120, monthlyQuantity(100, time.April, 10))
	})

	t.Run("usa base mínima para demanda muito baixa", func(t *testing.T) {
		assert.Equal(t, 5, monthlyQuantity(1, time.January, 0))
	})

	t.Run("nunca retorna quantidade menor que um", func(t *testing.T) {
		for month := time.January; month <= time.December; month++ {
			for index := 0; index < salesHistoryMonths; index++ {
				require.GreaterOrEqual(t, monthlyQuantity(5, month, index), 1)
			}
		}
	})
}

func TestGenerateSKU(t *testing.T) {
	t.Run("usa o prefixo da categoria", func(t *testing.T) {
		sku := generateSKU("Electronics")
		assert.True(t, strings.HasPrefix(sku, "Ele-"))
		assert.Len(t, sku, len("Ele-")+skuSuffixLength)
	})

	t.Run("categoria curta cai no prefixo genérico", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(generateSKU("TV"), "GEN-"))
	})
}
