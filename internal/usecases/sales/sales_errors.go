package sales

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de representantes de vendas
var (
	ErrSalesRepNotFound    = errors.New("sales representative not found")
	ErrSalesDataNotFound   = errors.New("sales data not found")
	ErrSalesDataInvalid    = errors.New("sales data is invalid")
	ErrSalesDataUnreadable = errors.New("sales data could not be read")
)

// SalesError é um erro com o código de API correspondente
type SalesError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	RepID   int    // ID do representante envolvido (quando aplicável)
	Details string // Detalhes adicionais, apenas para log
}

func (e *SalesError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SalesError) Unwrap() error {
	return e.Err
}

func NewSalesError(err error, code string, details string) *SalesError {
	return &SalesError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewSalesErrorWithID(err error, code string, repID int, details string) *SalesError {
	return &SalesError{
		Err:     err,
		Code:    code,
		RepID:   repID,
		Details: details,
	}
}
