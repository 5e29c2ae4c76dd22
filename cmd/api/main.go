package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/freelahub/agency-ops-api/infrastructure/database/postgres"
	"github.com/freelahub/agency-ops-api/infrastructure/integrator/currencylayer"
	"github.com/freelahub/agency-ops-api/infrastructure/integrator/currencylayer/currencylayerclient"
	"github.com/freelahub/agency-ops-api/infrastructure/ratestore"
	"github.com/freelahub/agency-ops-api/infrastructure/repository"
	"github.com/freelahub/agency-ops-api/internal/api"
	"github.com/freelahub/agency-ops-api/internal/config"
	"github.com/freelahub/agency-ops-api/internal/scheduler"
	"github.com/freelahub/agency-ops-api/internal/usecases/analyzing"
	"github.com/freelahub/agency-ops-api/internal/usecases/authenticating"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	clientRepo := repository.NewClientRepository(pgConn)
	projectRepo := repository.NewProjectRepository(pgConn)
	hourEntryRepo := repository.NewHourEntryRepository(pgConn)
	subscriptionRepo := repository.NewSubscriptionRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	rateStore := newRateStore(ctx, cfg)

	currencyLayerClient := currencylayerclient.NewClient(cfg)
	ratesService := currencylayer.New(cfg, currencyLayerClient, rateStore)

	analyticsService := analyzing.NewService(
		cfg,
		clientRepo,
		projectRepo,
		hourEntryRepo,
		subscriptionRepo,
		ratesService,
	)

	// Inicializa o agendador de atualização de câmbio em background
	ratesRefreshService := scheduler.NewRatesRefreshService(ratesService, cfg)
	if err := ratesRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização de câmbio")
	} else {
		logrus.Info("Agendador de atualização de câmbio iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analyticsService,
		ratesService,
		authenticator,
		ratesRefreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// newRateStore escolhe o armazenamento do cache de câmbio: Redis quando
// configurado, memória caso contrário
func newRateStore(ctx context.Context, cfg *config.Config) ratestore.Store {
	if cfg.Redis.Addr == "" {
		logrus.Info("REDIS_ADDR não configurado; usando cache de câmbio em memória")
		return ratestore.NewMemoryStore()
	}

	store := ratestore.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := store.Ping(ctx); err != nil {
		logrus.WithError(err).Warn("Redis indisponível; usando cache de câmbio em memória")
		return ratestore.NewMemoryStore()
	}

	logrus.Info("Conexão com Redis estabelecida com sucesso")
	return store
}
