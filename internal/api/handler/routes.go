package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/advising"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/sales"
	"github.com/vfg2006/sales-dashboard-api/pkg/metrics"
)

const (
	TagSales = "Sales"
	TagAI    = "AI"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: Welcome(),
		},
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Sales(service sales.SalesService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/data",
			Method:  http.MethodGet,
			Tag:     TagSales,
			Handler: ListSalesReps(service),
		},
		{
			Path:    "/api/data/:id",
			Method:  http.MethodGet,
			Tag:     TagSales,
			Handler: GetSalesRep(service),
		},
	}
}

func AI(service advising.Advisor) []router.Route {
	return []router.Route{
		{
			Path:    "/api/ai",
			Method:  http.MethodPost,
			Tag:     TagAI,
			Handler: AskAI(service),
		},
	}
}

func Docs() []router.Route {
	return []router.Route{
		{
			Path:    "/docs",
			Method:  http.MethodGet,
			Handler: DocsPage(),
		},
		{
			Path:    "/openapi.yaml",
			Method:  http.MethodGet,
			Handler: OpenAPISpec(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}
