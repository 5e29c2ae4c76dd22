// Package analyzing implementa o agregador de métricas financeiras do
// dashboard: horas, receita multi-moeda, custos de assinatura normalizados,
// lucro líquido e tendências período a período.
package analyzing

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/freelahub/agency-ops-api/infrastructure/integrator/currencylayer"
	"github.com/freelahub/agency-ops-api/infrastructure/repository"
	"github.com/freelahub/agency-ops-api/internal/config"
	"github.com/freelahub/agency-ops-api/internal/domain"
)

type Service struct {
	cfg              *config.Config
	clientRepo       repository.ClientRepository
	projectRepo      repository.ProjectRepository
	hourEntryRepo    repository.HourEntryRepository
	subscriptionRepo repository.SubscriptionRepository
	ratesService     currencylayer.RatesIntegrator
}

// NewService cria o serviço de análise com seus repositórios e o provedor de
// câmbio.
func NewService(
	cfg *config.Config,
	clientRepo repository.ClientRepository,
	projectRepo repository.ProjectRepository,
	hourEntryRepo repository.HourEntryRepository,
	subscriptionRepo repository.SubscriptionRepository,
	ratesService currencylayer.RatesIntegrator,
) Analyzer {
	return &Service{
		cfg:              cfg,
		clientRepo:       clientRepo,
		projectRepo:      projectRepo,
		hourEntryRepo:    hourEntryRepo,
		subscriptionRepo: subscriptionRepo,
		ratesService:     ratesService,
	}
}

func (s *Service) DashboardAnalytics(
	ctx context.Context,
	tenantID string,
	selector domain.PeriodSelector,
	custom *domain.CustomRange,
	targetCurrency string,
) (*domain.AnalyticsSnapshot, error) {
	var (
		clients       []*domain.Client
		projects      []*domain.Project
		entries       []*domain.HourEntry
		subscriptions []*domain.Subscription

		clientsErr, projectsErr, entriesErr, subsErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(4)

	go func() {
		defer wg.Done()
		clients, clientsErr = s.clientRepo.ListByTenant(tenantID)
	}()

	go func() {
		defer wg.Done()
		projects, projectsErr = s.projectRepo.ListByTenant(tenantID)
	}()

	go func() {
		defer wg.Done()
		entries, entriesErr = s.hourEntryRepo.ListByTenant(tenantID)
	}()

	go func() {
		defer wg.Done()
		subscriptions, subsErr = s.subscriptionRepo.ListByTenant(tenantID)
	}()

	wg.Wait()

	for _, err := range []error{clientsErr, projectsErr, entriesErr, subsErr} {
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"tenant_id": tenantID,
			}).Error("Erro ao carregar coleções do tenant para agregação")
			return nil, err
		}
	}

	return s.aggregate(ctx, clients, projects, entries, subscriptions, selector, custom, targetCurrency), nil
}

func (s *Service) AggregateRawCollections(
	ctx context.Context,
	raw *domain.RawCollections,
	selector domain.PeriodSelector,
	custom *domain.CustomRange,
	targetCurrency string,
) (*domain.AnalyticsSnapshot, error) {
	clients, projects, entries, subscriptions := raw.Normalize()
	return s.aggregate(ctx, clients, projects, entries, subscriptions, selector, custom, targetCurrency), nil
}

func (s *Service) aggregate(
	ctx context.Context,
	clients []*domain.Client,
	projects []*domain.Project,
	entries []*domain.HourEntry,
	subscriptions []*domain.Subscription,
	selector domain.PeriodSelector,
	custom *domain.CustomRange,
	targetCurrency string,
) *domain.AnalyticsSnapshot {
	if targetCurrency == "" {
		targetCurrency = s.cfg.Rates.DefaultDisplayCurrency
	}

	period := domain.ResolvePeriod(selector, custom)
	rates := s.ratesService.GetRates(ctx)

	return Aggregate(AggregationInput{
		Clients:        clients,
		Projects:       projects,
		HourEntries:    entries,
		Subscriptions:  subscriptions,
		Period:         period,
		TargetCurrency: targetCurrency,
		Rates:          rates,
	})
}
