package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de recurso (1000-1999)
	ErrSalesRepNotFound  = "RES_001" // Representante de vendas não encontrado
	ErrSalesDataNotFound = "RES_002" // Arquivo de dados ausente
	ErrRouteNotFound     = "RES_003" // Rota inexistente

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrMethodNotAllowed    = "VAL_004" // Método não suportado pela rota

	// Erros do servidor (5000-5999)
	ErrInternalServer     = "SRV_001" // Erro interno do servidor
	ErrInvalidSalesData   = "SRV_002" // Arquivo de dados fora do schema
	ErrExternalService    = "SRV_003" // Erro em serviço externo
	ErrMisconfiguredState = "SRV_004" // Configuração obrigatória ausente
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrSalesRepNotFound:    http.StatusNotFound,
	ErrSalesDataNotFound:   http.StatusNotFound,
	ErrRouteNotFound:       http.StatusNotFound,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusUnprocessableEntity,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrInvalidSalesData:    http.StatusInternalServerError,
	ErrExternalService:     http.StatusInternalServerError,
	ErrMisconfiguredState:  http.StatusInternalServerError,
}

// APIError é o corpo padronizado de erro: um único campo com a descrição
type APIError struct {
	Detail string `json:"detail"`
}

// StatusFor retorna o status HTTP de um código de erro
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(APIError{Detail: detail})
}
