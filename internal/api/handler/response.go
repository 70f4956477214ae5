package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// envelope é o formato padrão de resposta da API
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Items   any    `json:"items,omitempty"`
	Message string `json:"message,omitempty"`
}

// respondJSON escreve uma resposta de sucesso no formato padrão
func respondJSON(w http.ResponseWriter, status int, body envelope) {
	body.Success = true

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

// pathID extrai um identificador numérico do parâmetro de rota informado
func pathID(r *http.Request, name string) (int64, error) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName(name)
	return strconv.ParseInt(raw, 10, 64)
}

// queryInt lê um parâmetro inteiro da query string, com valor padrão
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// queryInt64Ptr lê um parâmetro inteiro opcional da query string
func queryInt64Ptr(r *http.Request, name string) *int64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &value
}
