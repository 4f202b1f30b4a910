// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/jsonfile"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/metrics"
	"github.com/xeipuuv/gojsonschema"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:embed schema/sales_data.schema.json
var salesDataSchemaJSON []byte

var salesDataSchema = mustLoadSchema(salesDataSchemaJSON)

var ErrSalesDataNotFound = errors.New("sales data not found")

// SchemaValidationError lista os campos do arquivo que não respeitam o schema
type SchemaValidationError struct {
	Errors []string
}

func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("sales data does not match schema: %s", strings.Join(e.Errors, "; "))
}

//go:generate mockgen -source=sales.go -destination=mocks/sales.go -package=mocks
type SalesRepository interface {
	LoadSalesData() (*domain.SalesData, error)
}

type salesRepository struct {
	file jsonfile.Reader
}

func NewSalesRepository(file jsonfile.Reader) SalesRepository {
	return &salesRepository{
		file: file,
	}
}

// LoadSalesData relê o arquivo a cada chamada; nada é mantido em memória entre requisições
func (r *salesRepository) LoadSalesData() (*domain.SalesData, error) {
	raw, err := r.file.Read()
	if err != nil {
		if errors.Is(err, jsonfile.ErrFileNotFound) {
			metrics.SalesDataLoads.WithLabelValues(metrics.ResultNotFound).Inc()
			return nil, pkgerrors.Wrap(ErrSalesDataNotFound, err.Error())
		}
		metrics.SalesDataLoads.WithLabelValues(metrics.ResultError).Inc()
		return nil, err
	}

	data, err := ParseSalesData(raw)
	if err != nil {
		metrics.SalesDataLoads.WithLabelValues(metrics.ResultInvalid).Inc()
		return nil, err
	}

	if duplicates := data.DuplicateIDs(); len(duplicates) > 0 {
		log.L.WithFields(log.Fields{
			"data_file":     r.file.Path(),
			"duplicate_ids": duplicates,
		}).Warn("IDs de representantes duplicados; a busca por ID retorna a primeira ocorrência")
	}

	metrics.SalesDataLoads.WithLabelValues(metrics.ResultSuccess).Inc()
	return data, nil
}

// ParseSalesData valida o documento contra o schema e só então o decodifica
func ParseSalesData(raw []byte) (*domain.SalesData, error) {
	result, err := salesDataSchema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, &SchemaValidationError{Errors: []string{fmt.Sprintf("malformed JSON: %s", err)}}
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = fmt.Sprintf("%s: %s", desc.Field(), desc.Description())
		}
		return nil, &SchemaValidationError{Errors: errs}
	}

	data := &domain.SalesData{}
	if err := json.Unmarshal(raw, data); err != nil {
		return nil, &SchemaValidationError{Errors: []string{err.Error()}}
	}

	return data, nil
}

func mustLoadSchema(schema []byte) *gojsonschema.Schema {
	loaded, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schema))
	if err != nil {
		panic(fmt.Sprintf("repository: invalid sales data schema: %v", err))
	}
	return loaded
}
