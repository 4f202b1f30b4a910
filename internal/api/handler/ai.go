package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/advising"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// AskAI encaminha a pergunta para o Gemini junto com os dados de vendas atuais
func AskAI(service advising.Advisor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.AIQuestionRequest

		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Corpo da requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body")
			return
		}

		response, err := service.Ask(r.Context(), request.Question)
		if err != nil {
			writeAdvisingError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, domain.AIResponse{Response: response})
	})
}

// A causa original de falhas do provedor já foi registrada pelo serviço e não vai para o cliente
func writeAdvisingError(w http.ResponseWriter, err error) {
	code := apiErrors.ErrInternalServer
	var advisingErr *advising.AdvisingError
	if errors.As(err, &advisingErr) {
		code = advisingErr.Code
	}

	switch {
	case errors.Is(err, advising.ErrQuestionRequired):
		apiErrors.WriteError(w, code, "Question is required")
	case errors.Is(err, advising.ErrAPIKeyNotConfigured):
		apiErrors.WriteError(w, code, "Google API key is not configured")
	default:
		apiErrors.WriteError(w, code, "Failed to process AI request")
	}
}
