package apiErrors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name           string
		code           string
		expectedStatus int
	}{
		{"requisição inválida", ErrInvalidRequest, http.StatusBadRequest},
		{"dados obrigatórios ausentes", ErrMissingRequiredData, http.StatusBadRequest},
		{"recurso não encontrado", ErrResourceNotFound, http.StatusNotFound},
		{"dados insuficientes", ErrInsufficientData, http.StatusBadRequest},
		{"erro interno", ErrInternalServer, http.StatusInternalServerError},
		{"erro de banco", ErrDatabaseOperation, http.StatusInternalServerError},
		{"código desconhecido", "XXX_999", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			WriteError(recorder, tt.code, "mensagem de teste", nil)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem de teste", body.Error)
		})
	}
}
