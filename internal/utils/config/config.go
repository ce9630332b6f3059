package config

import (
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/poolwatch/dex-backend/internal/consts"
	"github.com/poolwatch/dex-backend/internal/types/environments"
)

type AppConfig struct {
	Environment environments.Environment
	ApiServer   ApiServerConfig
	Postgres    DBConnection
	Chain       ChainConfig
	IndexPeriod string
	PageSize    int `validate:"gt=0"`
}

type ApiServerConfig struct {
	AllowedOrigins string
	Port           string
}

// ChainConfig identifies the chain the analytics cover and where to fetch
// and link transactions.
type ChainConfig struct {
	Name            string `validate:"required"`
	ExplorerBaseURL string `validate:"required,url"`
	SubgraphURL     string `validate:"required,url"`
}

type DBConnection struct {
	Host string `validate:"required"`
	Port string `validate:"required"`
	User string `validate:"required"`
	Name string `validate:"required"`
	Pass string

	SSLMode string
}

func New() *AppConfig {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// loads .env file for the environment; existing env variables win
	godotenv.Load(".env." + env)

	return &AppConfig{
		Environment: environments.Environment(env),
		ApiServer: ApiServerConfig{
			AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
			Port:           envVarOrDefault("API_PORT", "8080"),
		},
		Postgres: DBConnection{
			Host:    os.Getenv("DB_HOST"),
			Port:    os.Getenv("DB_PORT"),
			User:    os.Getenv("DB_USER"),
			Name:    os.Getenv("DB_NAME"),
			Pass:    os.Getenv("DB_PASS"),
			SSLMode: os.Getenv("DB_SSL_MODE"),
		},
		Chain: ChainConfig{
			Name:            envVarOrDefault("CHAIN_NAME", "ethereum"),
			ExplorerBaseURL: envVarOrDefault("CHAIN_EXPLORER_BASE_URL", "https://etherscan.io"),
			SubgraphURL:     os.Getenv("CHAIN_SUBGRAPH_URL"),
		},
		IndexPeriod: envVarOrDefault("INDEX_PERIOD", consts.DefaultIndexPeriod),
		PageSize:    envVarAtoiOrDefault("PAGE_SIZE", consts.DefaultPageSize),
	}
}

// Validate checks the loaded configuration before anything is wired to it.
func (c *AppConfig) Validate() error {
	return validator.New().Struct(c)
}

func envVarOrDefault(envName, fallback string) string {
	value := os.Getenv(envName)
	if value == "" {
		return fallback
	}
	return value
}

func envVarAtoiOrDefault(envName string, fallback int) int {
	valueStr := os.Getenv(envName)
	if valueStr == "" {
		return fallback
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		panic(err)
	}

	return value
}
