package currencylayerclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	cldomain "github.com/freelahub/agency-ops-api/infrastructure/integrator/currencylayer/domain"
	"github.com/freelahub/agency-ops-api/internal/config"
)

type Client interface {
	GetLiveQuotes(ctx context.Context, base string, currencies []string) (*cldomain.LiveQuotesResponse, error)
}

type CurrencyLayerClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &CurrencyLayerClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GetLiveQuotes busca as cotações ao vivo da moeda base contra o conjunto
// suportado. Uma única tentativa por chamada: a resiliência vem da tabela de
// fallback e do próximo ciclo agendado, não de retry aqui.
func (c *CurrencyLayerClient) GetLiveQuotes(ctx context.Context, base string, currencies []string) (*cldomain.LiveQuotesResponse, error) {
	if c.Cfg.CurrencyLayer.AccessKey == "" {
		return nil, errors.New("credencial do feed de câmbio ausente (CURRENCYLAYER_ACCESS_KEY)")
	}

	params := url.Values{}
	params.Add("access_key", c.Cfg.CurrencyLayer.AccessKey)
	params.Add("source", base)
	params.Add("currencies", strings.Join(currencies, ","))

	endpoint := c.Cfg.CurrencyLayer.URL + "/live?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição para o feed de câmbio")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao chamar o feed de câmbio")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("feed de câmbio respondeu status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta do feed de câmbio")
	}

	var response cldomain.LiveQuotesResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON do feed de câmbio")
		return nil, errors.Wrap(err, "payload do feed de câmbio malformado")
	}

	if !response.Success {
		if response.Error != nil {
			return nil, errors.Errorf("feed de câmbio retornou falha: %s (%d)", response.Error.Info, response.Error.Code)
		}
		return nil, errors.New("feed de câmbio retornou falha sem detalhe")
	}

	if len(response.Quotes) == 0 {
		return nil, errors.New("feed de câmbio não retornou cotações")
	}

	return &response, nil
}
