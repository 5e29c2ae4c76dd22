// Package currencylayer implementa o provedor de câmbio: cache durável,
// busca ao vivo com derivação da matriz completa de conversão e tabela
// estática de emergência. Nenhuma falha aqui chega ao chamador — conversões
// sempre produzem um número.
package currencylayer

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/freelahub/agency-ops-api/infrastructure/integrator/currencylayer/currencylayerclient"
	"github.com/freelahub/agency-ops-api/infrastructure/ratestore"
	"github.com/freelahub/agency-ops-api/internal/config"
	"github.com/freelahub/agency-ops-api/internal/domain"
)

// Cotações estáticas de emergência com base USD, usadas quando o feed falha e
// não há cache fresco. Valores aproximados são aceitáveis: são números de
// exibição, visivelmente degradados, nunca base de cobrança.
var fallbackQuotes = map[string]float64{
	"EUR": 0.92,
	"GBP": 0.79,
	"BRL": 5.10,
}

var fallbackTable = domain.BuildCrossTable("USD", fallbackQuotes)

var errMalformedQuotes = errors.New("cotações do feed fora do formato esperado")

type RatesIntegrator interface {
	// GetRates retorna a melhor tabela de câmbio disponível no momento:
	// cache fresco, busca ao vivo ou fallback estático, nessa ordem.
	GetRates(ctx context.Context) domain.RateTable
	// Refresh força uma tentativa de busca ao vivo, persistindo no cache em
	// caso de sucesso.
	Refresh(ctx context.Context) error
	// LastFetchedAt retorna o momento da última busca bem-sucedida, se houver.
	LastFetchedAt(ctx context.Context) *time.Time
}

type RatesService struct {
	cfg    *config.Config
	client currencylayerclient.Client
	store  ratestore.Store
	now    func() time.Time
}

func New(cfg *config.Config, client currencylayerclient.Client, store ratestore.Store) RatesIntegrator {
	return &RatesService{
		cfg:    cfg,
		client: client,
		store:  store,
		now:    time.Now,
	}
}

func (s *RatesService) GetRates(ctx context.Context) domain.RateTable {
	cached := s.cachedRates(ctx)
	if cached.Fresh(s.now(), s.cacheTTL()) {
		return cached.Table
	}

	table, err := s.fetchAndStore(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Falha ao buscar câmbio ao vivo; usando tabela de fallback")
		return fallbackTable
	}

	return table
}

func (s *RatesService) Refresh(ctx context.Context) error {
	_, err := s.fetchAndStore(ctx)
	return err
}

func (s *RatesService) LastFetchedAt(ctx context.Context) *time.Time {
	raw, ok, err := s.store.Get(ctx, ratestore.KeyRatesFetchedAt)
	if err != nil || !ok {
		return nil
	}

	fetchedAt, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil
	}

	return &fetchedAt
}

// cachedRates lê o cache durável. Qualquer problema de leitura ou decodificação
// é tratado como cache ausente.
func (s *RatesService) cachedRates(ctx context.Context) *domain.CachedRates {
	rawTable, ok, err := s.store.Get(ctx, ratestore.KeyRatesTable)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao ler a tabela de câmbio do cache")
		return nil
	}
	if !ok {
		return nil
	}

	rawFetchedAt, ok, err := s.store.Get(ctx, ratestore.KeyRatesFetchedAt)
	if err != nil || !ok {
		return nil
	}

	var table domain.RateTable
	if err := json.Unmarshal([]byte(rawTable), &table); err != nil {
		logrus.WithError(err).Warn("Tabela de câmbio em cache corrompida; ignorando")
		return nil
	}

	fetchedAt, err := time.Parse(time.RFC3339, rawFetchedAt)
	if err != nil {
		return nil
	}

	return &domain.CachedRates{Table: table, FetchedAt: fetchedAt}
}

// fetchAndStore busca as cotações ao vivo, deriva a matriz completa e persiste
// o resultado. O cache só é escrito em caso de sucesso.
func (s *RatesService) fetchAndStore(ctx context.Context) (domain.RateTable, error) {
	base := s.cfg.Rates.BaseCurrency

	targets := make([]string, 0, len(s.cfg.Rates.SupportedCurrencies))
	for _, code := range s.cfg.Rates.SupportedCurrencies {
		if code != base {
			targets = append(targets, code)
		}
	}

	resp, err := s.client.GetLiveQuotes(ctx, base, targets)
	if err != nil {
		return nil, err
	}

	// As cotações vêm chaveadas como "<BASE><DESTINO>"; extrair o destino
	quotes := make(map[string]float64, len(resp.Quotes))
	for pair, rate := range resp.Quotes {
		if !strings.HasPrefix(pair, base) || rate <= 0 {
			continue
		}
		quotes[strings.TrimPrefix(pair, base)] = rate
	}

	if len(quotes) == 0 {
		logrus.WithField("source", resp.Source).Error("Feed de câmbio retornou cotações fora do formato esperado")
		return nil, errMalformedQuotes
	}

	table := domain.BuildCrossTable(base, quotes)
	fetchedAt := s.now()

	serialized, err := json.Marshal(table)
	if err != nil {
		return nil, err
	}

	if err := s.store.Set(ctx, ratestore.KeyRatesTable, string(serialized)); err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, ratestore.KeyRatesFetchedAt, fetchedAt.Format(time.RFC3339)); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"base":       base,
		"currencies": len(table),
	}).Info("Tabela de câmbio atualizada com sucesso")

	return table, nil
}

func (s *RatesService) cacheTTL() time.Duration {
	minutes := s.cfg.Rates.CacheTTLMinutes
	if minutes <= 0 {
		minutes = 60
	}
	return time.Duration(minutes) * time.Minute
}
