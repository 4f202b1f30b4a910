package advising

import (
	"context"

	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/metrics"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

type Advisor interface {
	Ask(ctx context.Context, question string) (string, error)
}

type Service struct {
	salesRepository repository.SalesRepository
	geminiClient    geminiclient.Client
	cfg             config.Gemini
}

func NewService(
	salesRepository repository.SalesRepository,
	geminiClient geminiclient.Client,
	cfg config.Gemini,
) Advisor {
	return &Service{
		salesRepository: salesRepository,
		geminiClient:    geminiClient,
		cfg:             cfg,
	}
}

// Ask responde a pergunta com base no snapshot atual dos dados de vendas.
// Falhas de leitura ou do provedor são registradas no log e devolvidas como ErrAIRequestFailed.
func (s *Service) Ask(ctx context.Context, question string) (string, error) {
	if question == "" {
		metrics.AIRequests.WithLabelValues(metrics.OutcomeRejected).Inc()
		return "", NewAdvisingError(ErrQuestionRequired, apiErrors.ErrMissingRequiredData, "")
	}

	if s.cfg.APIKey == "" {
		metrics.AIRequests.WithLabelValues(metrics.OutcomeUnconfigured).Inc()
		return "", NewAdvisingError(ErrAPIKeyNotConfigured, apiErrors.ErrMisconfiguredState, "")
	}

	inquiryID, err := utils.GenerateID()
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Não foi possível gerar o ID da consulta")
	}
	logger := log.ForContext(ctx).WithField("inquiry_id", inquiryID)

	response, err := s.ask(ctx, question)
	if err != nil {
		logger.WithError(err).Error("Erro ao processar pergunta para a IA")
		metrics.AIRequests.WithLabelValues(metrics.OutcomeFailed).Inc()
		return "", NewAdvisingError(ErrAIRequestFailed, apiErrors.ErrExternalService, inquiryID)
	}

	logger.Debug("Resposta da IA recebida")
	metrics.AIRequests.WithLabelValues(metrics.OutcomeAnswered).Inc()
	return response, nil
}

func (s *Service) ask(ctx context.Context, question string) (string, error) {
	data, err := s.salesRepository.LoadSalesData()
	if err != nil {
		return "", pkgerrors.Wrap(err, "loading sales data")
	}

	prompt, err := BuildPrompt(data, question)
	if err != nil {
		return "", pkgerrors.Wrap(err, "building prompt")
	}

	response, err := s.geminiClient.GenerateContent(ctx, prompt)
	if err != nil {
		return "", pkgerrors.Wrap(err, "calling gemini")
	}

	return response, nil
}
