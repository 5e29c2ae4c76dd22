package currencylayer

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	clientmocks "github.com/freelahub/agency-ops-api/infrastructure/integrator/currencylayer/currencylayerclient/mocks"
	cldomain "github.com/freelahub/agency-ops-api/infrastructure/integrator/currencylayer/domain"
	"github.com/freelahub/agency-ops-api/infrastructure/ratestore"
	"github.com/freelahub/agency-ops-api/internal/config"
	"github.com/freelahub/agency-ops-api/internal/domain"
)

func newTestConfig() *config.Config {
	return &config.Config{
		Rates: config.Rates{
			BaseCurrency:        "USD",
			SupportedCurrencies: []string{"USD", "EUR", "GBP", "BRL"},
			CacheTTLMinutes:     60,
		},
	}
}

func newTestService(client *clientmocks.MockClient, store ratestore.Store, now time.Time) *RatesService {
	return &RatesService{
		cfg:    newTestConfig(),
		client: client,
		store:  store,
		now:    func() time.Time { return now },
	}
}

func TestRatesService_GetRates(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("cache fresco evita ida ao feed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := clientmocks.NewMockClient(ctrl)
		store := ratestore.NewMemoryStore()

		cached := domain.BuildCrossTable("USD", map[string]float64{"EUR": 0.90})
		serialized, err := json.Marshal(cached)
		require.NoError(t, err)
		require.NoError(t, store.Set(ctx, ratestore.KeyRatesTable, string(serialized)))
		require.NoError(t, store.Set(ctx, ratestore.KeyRatesFetchedAt, now.Add(-30*time.Minute).Format(time.RFC3339)))

		service := newTestService(mockClient, store, now)

		table := service.GetRates(ctx)

		rate, ok := table.Rate("USD", "EUR")
		assert.True(t, ok)
		assert.Equal(t, 0.90, rate)
	})

	t.Run("cache expirado dispara busca ao vivo e persiste", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := clientmocks.NewMockClient(ctrl)
		store := ratestore.NewMemoryStore()

		stale := domain.BuildCrossTable("USD", map[string]float64{"EUR": 0.50})
		serialized, err := json.Marshal(stale)
		require.NoError(t, err)
		require.NoError(t, store.Set(ctx, ratestore.KeyRatesTable, string(serialized)))
		require.NoError(t, store.Set(ctx, ratestore.KeyRatesFetchedAt, now.Add(-2*time.Hour).Format(time.RFC3339)))

		mockClient.EXPECT().
			GetLiveQuotes(gomock.Any(), "USD", []string{"EUR", "GBP", "BRL"}).
			Return(&cldomain.LiveQuotesResponse{
				Success: true,
				Source:  "USD",
				Quotes: map[string]float64{
					"USDEUR": 0.92,
					"USDGBP": 0.79,
					"USDBRL": 5.10,
				},
			}, nil)

		service := newTestService(mockClient, store, now)

		table := service.GetRates(ctx)

		rate, ok := table.Rate("USD", "EUR")
		assert.True(t, ok)
		assert.Equal(t, 0.92, rate)

		// Cruzamento derivado da base
		cross, ok := table.Rate("EUR", "BRL")
		assert.True(t, ok)
		assert.InDelta(t, 5.10/0.92, cross, 1e-9)

		// A tabela e o carimbo de busca foram persistidos
		raw, ok, err := store.Get(ctx, ratestore.KeyRatesTable)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.NotEmpty(t, raw)

		fetchedAt := service.LastFetchedAt(ctx)
		require.NotNil(t, fetchedAt)
		assert.True(t, fetchedAt.Equal(now))
	})

	t.Run("falha do feed sem cache degrada para o fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := clientmocks.NewMockClient(ctrl)
		store := ratestore.NewMemoryStore()

		mockClient.EXPECT().
			GetLiveQuotes(gomock.Any(), "USD", gomock.Any()).
			Return(nil, errors.New("timeout"))

		service := newTestService(mockClient, store, now)

		table := service.GetRates(ctx)

		rate, ok := table.Rate("USD", "EUR")
		assert.True(t, ok)
		assert.Equal(t, 0.92, rate, "fallback estático cobre as conversões")

		// Nada foi escrito no cache: o fallback nunca é persistido
		_, ok, err := store.Get(ctx, ratestore.KeyRatesTable)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("cotações fora do formato esperado degradam para o fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := clientmocks.NewMockClient(ctrl)
		store := ratestore.NewMemoryStore()

		mockClient.EXPECT().
			GetLiveQuotes(gomock.Any(), "USD", gomock.Any()).
			Return(&cldomain.LiveQuotesResponse{
				Success: true,
				Quotes:  map[string]float64{"EURUSD": 1.08},
			}, nil)

		service := newTestService(mockClient, store, now)

		table := service.GetRates(ctx)

		rate, ok := table.Rate("USD", "BRL")
		assert.True(t, ok)
		assert.Equal(t, 5.10, rate)
	})

	t.Run("cache corrompido é tratado como ausente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := clientmocks.NewMockClient(ctrl)
		store := ratestore.NewMemoryStore()

		require.NoError(t, store.Set(ctx, ratestore.KeyRatesTable, "{broken"))
		require.NoError(t, store.Set(ctx, ratestore.KeyRatesFetchedAt, now.Format(time.RFC3339)))

		mockClient.EXPECT().
			GetLiveQuotes(gomock.Any(), "USD", gomock.Any()).
			Return(&cldomain.LiveQuotesResponse{
				Success: true,
				Quotes:  map[string]float64{"USDEUR": 0.95},
			}, nil)

		service := newTestService(mockClient, store, now)

		table := service.GetRates(ctx)

		rate, ok := table.Rate("USD", "EUR")
		assert.True(t, ok)
		assert.Equal(t, 0.95, rate)
	})
}

func TestRatesService_Refresh(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("propaga a falha do feed sem tocar no cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := clientmocks.NewMockClient(ctrl)
		store := ratestore.NewMemoryStore()

		mockClient.EXPECT().
			GetLiveQuotes(gomock.Any(), "USD", gomock.Any()).
			Return(nil, errors.New("HTTP 500"))

		service := newTestService(mockClient, store, now)

		err := service.Refresh(ctx)
		assert.Error(t, err)

		_, ok, getErr := store.Get(ctx, ratestore.KeyRatesTable)
		require.NoError(t, getErr)
		assert.False(t, ok)
	})

	t.Run("sucesso substitui a tabela por inteiro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := clientmocks.NewMockClient(ctrl)
		store := ratestore.NewMemoryStore()

		mockClient.EXPECT().
			GetLiveQuotes(gomock.Any(), "USD", gomock.Any()).
			Return(&cldomain.LiveQuotesResponse{
				Success: true,
				Quotes:  map[string]float64{"USDEUR": 0.93, "USDGBP": 0.80},
			}, nil)

		service := newTestService(mockClient, store, now)

		require.NoError(t, service.Refresh(ctx))

		raw, ok, err := store.Get(ctx, ratestore.KeyRatesTable)
		require.NoError(t, err)
		require.True(t, ok)

		var table domain.RateTable
		require.NoError(t, json.Unmarshal([]byte(raw), &table))

		rate, ok := table.Rate("GBP", "EUR")
		assert.True(t, ok)
		assert.InDelta(t, 0.93/0.80, rate, 1e-9)
	})
}
