package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	geminimocks "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/gemini/geminiclient/mocks"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/advising"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/sales"
	"go.uber.org/mock/gomock"
)

const anaJSON = `{"id":1,"name":"Ana","role":"AE","region":"EMEA","deals":[],"skills":[],"clients":[]}`

type testAPI struct {
	router     router.Router
	repo       *mocks.MockSalesRepository
	gemini     *geminimocks.MockClient
	geminiConf config.Gemini
}

func newTestAPI(t *testing.T, apiKey string) *testAPI {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockSalesRepository(ctrl)
	gemini := geminimocks.NewMockClient(ctrl)
	geminiConf := config.Gemini{APIKey: apiKey, Model: "gemini-1.5-flash"}

	rt := router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Sales(sales.NewService(repo))...),
		router.WithRoutes(AI(advising.NewService(repo, gemini, geminiConf))...),
		router.WithRoutes(Docs()...),
		router.WithRoutes(Metrics()...),
	)

	return &testAPI{router: rt, repo: repo, gemini: gemini, geminiConf: geminiConf}
}

func (a *testAPI) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func anaData() *domain.SalesData {
	return &domain.SalesData{
		SalesReps: []domain.SalesRep{
			{ID: 1, Name: "Ana", Role: "AE", Region: "EMEA", Deals: []domain.Deal{}, Skills: []string{}, Clients: []domain.Client{}},
		},
	}
}

func threeReps() *domain.SalesData {
	data := &domain.SalesData{}
	for i, name := range []string{"Alice", "Bob", "Charlie"} {
		data.SalesReps = append(data.SalesReps, domain.SalesRep{
			ID: i + 1, Name: name, Deals: []domain.Deal{}, Skills: []string{}, Clients: []domain.Client{},
		})
	}
	return data
}

func TestWelcome(t *testing.T) {
	api := newTestAPI(t, "")

	w := api.do(http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Welcome to the Sales Dashboard API. Visit /docs for API documentation."}`, w.Body.String())
}

func TestHealthcheck(t *testing.T) {
	api := newTestAPI(t, "")

	w := api.do(http.MethodGet, "/healthcheck", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.String())
}

func TestListSalesReps(t *testing.T) {
	api := newTestAPI(t, "")
	api.repo.EXPECT().LoadSalesData().Return(threeReps(), nil)

	w := api.do(http.MethodGet, "/api/data", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body domain.SalesData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.SalesReps, 3)
	assert.Equal(t, "Charlie", body.SalesReps[2].Name)
}

func TestGetSalesRep(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(api *testAPI)
		wantStatus int
		wantBody   string
	}{
		{
			name: "Representante existente retorna o objeto exato",
			path: "/api/data/1",
			setup: func(api *testAPI) {
				api.repo.EXPECT().LoadSalesData().Return(anaData(), nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   anaJSON,
		},
		{
			name: "Representante inexistente",
			path: "/api/data/2",
			setup: func(api *testAPI) {
				api.repo.EXPECT().LoadSalesData().Return(anaData(), nil)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"detail":"Sales representative not found"}`,
		},
		{
			name:       "ID não numérico",
			path:       "/api/data/abc",
			setup:      func(api *testAPI) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"detail":"Sales representative id must be an integer"}`,
		},
		{
			name:       "ID inteiro fora da faixa",
			path:       "/api/data/99999999999999999999999",
			setup:      func(api *testAPI) {},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"detail":"Sales representative not found"}`,
		},
		{
			name:       "ID negativo fora da faixa",
			path:       "/api/data/-99999999999999999999999",
			setup:      func(api *testAPI) {},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"detail":"Sales representative not found"}`,
		},
		{
			name: "Arquivo de dados ausente",
			path: "/api/data/1",
			setup: func(api *testAPI) {
				api.repo.EXPECT().LoadSalesData().Return(nil, repository.ErrSalesDataNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"detail":"Sales data not found"}`,
		},
		{
			name: "Arquivo de dados inválido",
			path: "/api/data",
			setup: func(api *testAPI) {
				api.repo.EXPECT().LoadSalesData().Return(nil, &repository.SchemaValidationError{Errors: []string{"salesReps is required"}})
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"detail":"Sales data is invalid"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t, "")
			tt.setup(api)

			w := api.do(http.MethodGet, tt.path, "")

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestGetSalesRep_EveryIDResolves(t *testing.T) {
	api := newTestAPI(t, "")
	data := threeReps()
	api.repo.EXPECT().LoadSalesData().Return(data, nil).Times(len(data.SalesReps))

	for _, rep := range data.SalesReps {
		w := api.do(http.MethodGet, "/api/data/"+strconv.Itoa(rep.ID), "")

		require.Equal(t, http.StatusOK, w.Code)
		var body domain.SalesRep
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, rep.ID, body.ID)
		assert.Equal(t, rep.Name, body.Name)
	}
}

func TestAskAI(t *testing.T) {
	api := newTestAPI(t, "test-key")
	api.repo.EXPECT().LoadSalesData().Return(anaData(), nil)
	api.gemini.EXPECT().
		GenerateContent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt string) (string, error) {
			assert.Contains(t, prompt, "Question: Quem é a Ana?")
			return "Ana é AE na região EMEA.", nil
		})

	w := api.do(http.MethodPost, "/api/ai", `{"question":"Quem é a Ana?"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"response":"Ana é AE na região EMEA."}`, w.Body.String())
}

func TestAskAI_Errors(t *testing.T) {
	tests := []struct {
		name       string
		apiKey     string
		body       string
		setup      func(api *testAPI)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "Pergunta ausente não chama o provedor",
			apiKey:     "test-key",
			body:       `{}`,
			setup:      func(api *testAPI) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"detail":"Question is required"}`,
		},
		{
			name:       "Pergunta vazia não chama o provedor",
			apiKey:     "test-key",
			body:       `{"question":""}`,
			setup:      func(api *testAPI) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"detail":"Question is required"}`,
		},
		{
			name:       "Corpo inválido",
			apiKey:     "test-key",
			body:       `pergunta`,
			setup:      func(api *testAPI) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"detail":"Invalid request body"}`,
		},
		{
			name:       "Sem chave configurada não chama o provedor",
			apiKey:     "",
			body:       `{"question":"Quem vende mais?"}`,
			setup:      func(api *testAPI) {},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"detail":"Google API key is not configured"}`,
		},
		{
			name:   "Falha do provedor vira erro genérico",
			apiKey: "test-key",
			body:   `{"question":"Quem vende mais?"}`,
			setup: func(api *testAPI) {
				api.repo.EXPECT().LoadSalesData().Return(anaData(), nil)
				api.gemini.EXPECT().
					GenerateContent(gomock.Any(), gomock.Any()).
					Return("", errors.New("429 RESOURCE_EXHAUSTED"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"detail":"Failed to process AI request"}`,
		},
		{
			name:   "Falha ao carregar dados vira erro genérico",
			apiKey: "test-key",
			body:   `{"question":"Quem vende mais?"}`,
			setup: func(api *testAPI) {
				api.repo.EXPECT().LoadSalesData().Return(nil, repository.ErrSalesDataNotFound)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"detail":"Failed to process AI request"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t, tt.apiKey)
			tt.setup(api)

			w := api.do(http.MethodPost, "/api/ai", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestDocs(t *testing.T) {
	api := newTestAPI(t, "")

	w := api.do(http.MethodGet, "/docs", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "redoc-container")

	w = api.do(http.MethodGet, "/openapi.yaml", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/data/{id}")
	assert.Contains(t, w.Body.String(), "tags: [AI]")
}

func TestMetricsRoute(t *testing.T) {
	api := newTestAPI(t, "")
	api.do(http.MethodGet, "/", "")

	w := api.do(http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestRouteTags(t *testing.T) {
	api := newTestAPI(t, "")

	tags := map[string]string{}
	for _, route := range api.router.Routes() {
		tags[route.Path] = route.Tag
	}

	assert.Equal(t, TagSales, tags["/api/data"])
	assert.Equal(t, TagSales, tags["/api/data/:id"])
	assert.Equal(t, TagAI, tags["/api/ai"])
}
