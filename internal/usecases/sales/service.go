package sales

import (
	"errors"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

type SalesService interface {
	ListSalesReps() (*domain.SalesData, error)
	GetSalesRep(id int) (*domain.SalesRep, error)
}

type Service struct {
	salesRepository repository.SalesRepository
}

func NewService(salesRepository repository.SalesRepository) SalesService {
	return &Service{
		salesRepository: salesRepository,
	}
}

// ListSalesReps retorna a coleção completa, na ordem do arquivo
func (s *Service) ListSalesReps() (*domain.SalesData, error) {
	data, err := s.load()
	if err != nil {
		return nil, err
	}
	return data, nil
}

// GetSalesRep faz uma busca linear e retorna a primeira ocorrência do ID
func (s *Service) GetSalesRep(id int) (*domain.SalesRep, error) {
	data, err := s.load()
	if err != nil {
		return nil, err
	}

	rep, found := data.FindByID(id)
	if !found {
		return nil, NewSalesErrorWithID(ErrSalesRepNotFound, apiErrors.ErrSalesRepNotFound, id, "")
	}

	return rep, nil
}

func (s *Service) load() (*domain.SalesData, error) {
	data, err := s.salesRepository.LoadSalesData()
	if err == nil {
		return data, nil
	}

	var validationErr *repository.SchemaValidationError
	switch {
	case errors.Is(err, repository.ErrSalesDataNotFound):
		return nil, NewSalesError(ErrSalesDataNotFound, apiErrors.ErrSalesDataNotFound, err.Error())
	case errors.As(err, &validationErr):
		return nil, NewSalesError(ErrSalesDataInvalid, apiErrors.ErrInvalidSalesData, err.Error())
	default:
		return nil, NewSalesError(ErrSalesDataUnreadable, apiErrors.ErrInternalServer, err.Error())
	}
}
