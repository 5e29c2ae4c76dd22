package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Redis         Redis         `mapstructure:",squash"`
	Rates         Rates         `mapstructure:",squash"`
	CurrencyLayer CurrencyLayer `mapstructure:",squash"`
	RatesRefresh  RatesRefresh  `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
}

// Rates concentra as decisões que o código-fonte de origem deixava divergir
// entre implementações paralelas: um único TTL e um único conjunto de moedas,
// ambos configuráveis em vez de lei.
type Rates struct {
	BaseCurrency           string   `mapstructure:"rates_base_currency"`
	SupportedCurrencies    []string `mapstructure:"rates_supported_currencies"`
	CacheTTLMinutes        int      `mapstructure:"rates_cache_ttl_minutes"`
	DefaultDisplayCurrency string   `mapstructure:"rates_default_display_currency"`
}

type CurrencyLayer struct {
	URL       string `mapstructure:"currencylayer_url"`
	AccessKey string `mapstructure:"currencylayer_access_key"`
}

type RatesRefresh struct {
	CronSchedule string `mapstructure:"rates_refresh_cron"`
	Enabled      bool   `mapstructure:"rates_refresh_enabled"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/agencyops")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REDIS_ADDR", "") // vazio usa o armazenamento em memória
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("RATES_BASE_CURRENCY", "USD")
	viper.SetDefault("RATES_SUPPORTED_CURRENCIES", "USD,EUR,GBP,BRL")
	viper.SetDefault("RATES_CACHE_TTL_MINUTES", 60) // integração direta com a API: 1 hora
	viper.SetDefault("RATES_DEFAULT_DISPLAY_CURRENCY", "USD")

	viper.SetDefault("CURRENCYLAYER_URL", "https://api.currencylayer.com")
	viper.SetDefault("CURRENCYLAYER_ACCESS_KEY", "")

	viper.SetDefault("RATES_REFRESH_CRON", "0 * * * *") // a cada hora
	viper.SetDefault("RATES_REFRESH_ENABLED", true)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile carrega o arquivo .env procurando nas localizações usuais
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Warn("Nenhum arquivo .env encontrado; usando variáveis de ambiente e defaults")
}
