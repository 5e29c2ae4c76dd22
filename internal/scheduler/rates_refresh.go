// Package scheduler contém o agendamento da atualização periódica da tabela
// de câmbio.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/freelahub/agency-ops-api/infrastructure/integrator/currencylayer"
	"github.com/freelahub/agency-ops-api/internal/config"
)

type RatesRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// RatesRefreshService dispara a atualização do câmbio num intervalo fixo,
// independente das leituras. Falhas são apenas logadas: a próxima execução
// agendada já é a retentativa, e o provedor degrada para o fallback enquanto
// isso.
type RatesRefreshService struct {
	scheduler           *gocron.Scheduler
	ratesService        currencylayer.RatesIntegrator
	config              RatesRefreshConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewRatesRefreshService(ratesService currencylayer.RatesIntegrator, cfg *config.Config) *RatesRefreshService {
	refreshConfig := RatesRefreshConfig{
		CronSchedule: cfg.RatesRefresh.CronSchedule,
		Enabled:      cfg.RatesRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.Enabled,
	}).Info("Configuração do agendador de câmbio carregada")

	return &RatesRefreshService{
		scheduler:    gocron.NewScheduler(time.Local),
		ratesService: ratesService,
		config:       refreshConfig,
	}
}

func (s *RatesRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de atualização de câmbio desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de atualização de câmbio")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RefreshRates(); err != nil {
			logrus.WithError(err).Error("Erro na atualização agendada de câmbio")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de câmbio: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de atualização de câmbio")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshRates executa uma atualização, garantindo uma única execução por vez.
func (s *RatesRefreshService) RefreshRates() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Atualização de câmbio já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando atualização da tabela de câmbio")

	if err := s.ratesService.Refresh(context.Background()); err != nil {
		// não fatal: o fallback cobre as conversões até a próxima execução
		logrus.WithError(err).Warn("Atualização de câmbio falhou; fallback permanece em uso")
		return err
	}

	logrus.Info("Atualização da tabela de câmbio concluída")

	return nil
}

// TriggerManualSync dispara uma atualização fora do agendamento.
func (s *RatesRefreshService) TriggerManualSync() {
	go func() {
		if err := s.RefreshRates(); err != nil {
			logrus.WithError(err).Error("Erro na atualização manual de câmbio")
		}
	}()
}

// LastSync retorna os instantes da última execução, para o endpoint de status.
func (s *RatesRefreshService) LastSync() (startedAt, completedAt time.Time, running bool) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return s.lastSyncStartedAt, s.lastSyncCompletedAt, s.syncRunning
}
