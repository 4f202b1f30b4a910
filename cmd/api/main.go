package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/jsonfile"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/advising"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/sales"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.Env, cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	salesFile := dataFile(cfg.Data)
	salesRepo := repository.NewSalesRepository(salesFile)

	// Falha na inicialização se o arquivo estiver ausente ou inválido
	data, err := salesRepo.LoadSalesData()
	if err != nil {
		logrus.WithError(err).WithField("data_file", salesFile.Path()).Fatal("Erro ao carregar dados de vendas")
	}
	logrus.WithFields(logrus.Fields{
		"data_file":  salesFile.Path(),
		"sales_reps": len(data.SalesReps),
	}).Info("Dados de vendas carregados com sucesso")

	if cfg.Gemini.APIKey == "" {
		logrus.Warn("GOOGLE_API_KEY não configurada, /api/ai responderá com erro")
	}

	geminiClient := geminiclient.NewClient(cfg.Gemini)

	salesService := sales.NewService(salesRepo)
	advisor := advising.NewService(salesRepo, geminiClient, cfg.Gemini)

	server, err := api.New(cfg, salesService, advisor)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// dataFile abre a fonte de dados de vendas
func dataFile(dataConfig config.Data) *jsonfile.File {
	file := jsonfile.NewFile(dataConfig)

	if err := file.Ping(); err != nil {
		logrus.WithError(err).Fatal("Erro ao acessar arquivo de dados de vendas")
	}

	logrus.WithField("data_file", file.Path()).Info("Arquivo de dados de vendas encontrado")
	return file
}
