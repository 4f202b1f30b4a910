package handler

import (
	_ "embed"
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// OpenAPI contém a especificação OpenAPI embutida
//
//go:embed openapi.yaml
var OpenAPI []byte

// Página mínima do ReDoc que carrega /openapi.yaml
const docsHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8">
    <title>Sales Dashboard API - Docs</title>
    <style>body{margin:0;padding:0}</style>
  </head>
  <body>
    <redoc id="redoc-container"></redoc>
    <script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
    <script>Redoc.init('/openapi.yaml', { suppressWarnings: true }, document.getElementById('redoc-container'));</script>
  </body>
</html>`

func DocsPage() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write([]byte(docsHTML)); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao enviar página de documentação")
		}
	})
}

func OpenAPISpec() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
		if _, err := w.Write(OpenAPI); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao enviar especificação OpenAPI")
		}
	})
}
