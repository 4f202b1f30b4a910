package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/sales"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// ListSalesReps retorna todos os representantes de vendas
func ListSalesReps(service sales.SalesService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := service.ListSalesReps()
		if err != nil {
			writeSalesError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, data)
	})
}

// GetSalesRep retorna um representante de vendas pelo ID
func GetSalesRep(service sales.SalesService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")

		id, err := strconv.Atoi(idStr)
		if errors.Is(err, strconv.ErrRange) {
			// Inteiro válido, mas nenhum representante pode ter esse ID
			log.ForContext(r.Context()).WithField("rep_id", idStr).Info("Representante não encontrado")
			apiErrors.WriteError(w, apiErrors.ErrSalesRepNotFound, "Sales representative not found")
			return
		}
		if err != nil {
			log.ForContext(r.Context()).WithField("rep_id", idStr).Warn("ID de representante inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Sales representative id must be an integer")
			return
		}

		rep, err := service.GetSalesRep(id)
		if err != nil {
			writeSalesError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, rep)
	})
}

func writeSalesError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var salesErr *sales.SalesError
	if !errors.As(err, &salesErr) {
		logger.Error("Erro inesperado ao consultar representantes")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to load sales data")
		return
	}

	switch {
	case errors.Is(err, sales.ErrSalesRepNotFound):
		logger.WithField("rep_id", salesErr.RepID).Info("Representante não encontrado")
		apiErrors.WriteError(w, salesErr.Code, "Sales representative not found")
	case errors.Is(err, sales.ErrSalesDataNotFound):
		logger.Error("Arquivo de dados de vendas não encontrado")
		apiErrors.WriteError(w, salesErr.Code, "Sales data not found")
	case errors.Is(err, sales.ErrSalesDataInvalid):
		logger.Error("Arquivo de dados de vendas inválido")
		apiErrors.WriteError(w, salesErr.Code, "Sales data is invalid")
	default:
		logger.Error("Erro ao ler dados de vendas")
		apiErrors.WriteError(w, salesErr.Code, "Failed to load sales data")
	}
}
