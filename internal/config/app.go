package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
}

// GetConnectionStr builds a plain keyword DSN. Pool sizing is applied on the
// parsed pool config, not here, so the same DSN also works for migrations
// through database/sql.
func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type Feeds struct {
	FXURL   string `mapstructure:"fx_url"`
	GoldURL string `mapstructure:"gold_url"`
}

type Scheduler struct {
	Enabled bool   `mapstructure:"enabled"`
	At      string `mapstructure:"at"`
}

type Auth struct {
	JWTSecret       string `mapstructure:"jwt_secret"`
	TokenTTLMinutes int    `mapstructure:"token_ttl_minutes"`
}

type Cache struct {
	MaxItems   int64 `mapstructure:"max_items"`
	TTLSeconds int   `mapstructure:"ttl_seconds"`
}

type Settings struct {
	DataDir string `mapstructure:"data_dir"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	DbServer   DbServer   `mapstructure:"db_server"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	Feeds      Feeds      `mapstructure:"feeds"`
	Scheduler  Scheduler  `mapstructure:"scheduler"`
	Auth       Auth       `mapstructure:"auth"`
	Cache      Cache      `mapstructure:"cache"`
	Settings   Settings   `mapstructure:"settings"`
	Logging    Logging    `mapstructure:"logging"`
}

func Init() (*AppConfig, error) {
	var cfg AppConfig

	if err := godotenv.Load(); err != nil {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	viper.SetConfigFile("config.yaml")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	viper.SetDefault("db_server.max_conns", 10)
	viper.SetDefault("http_client.timeout_seconds", 10)
	viper.SetDefault("scheduler.at", "06:00")
	viper.SetDefault("auth.token_ttl_minutes", 60)
	viper.SetDefault("cache.max_items", 64)
	viper.SetDefault("cache.ttl_seconds", 300)
	viper.SetDefault("settings.data_dir", "data")
	viper.SetDefault("logging.level", "info")

	// db server env vars
	_ = viper.BindEnv("db_server.host", "DB_HOST")
	_ = viper.BindEnv("db_server.port", "DB_PORT")
	_ = viper.BindEnv("db_server.user", "DB_USER")
	_ = viper.BindEnv("db_server.pass", "DB_PASS")
	_ = viper.BindEnv("db_server.name", "DB_NAME")
	_ = viper.BindEnv("db_server.max_conns", "DB_MAX_CONNS")

	// http client env vars
	_ = viper.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	// feed env vars
	_ = viper.BindEnv("feeds.fx_url", "FEEDS_FX_URL")
	_ = viper.BindEnv("feeds.gold_url", "FEEDS_GOLD_URL")

	// auth env vars
	_ = viper.BindEnv("auth.jwt_secret", "AUTH_JWT_SECRET")
	_ = viper.BindEnv("auth.token_ttl_minutes", "AUTH_TOKEN_TTL_MINUTES")

	// scheduler env vars
	_ = viper.BindEnv("scheduler.enabled", "SCHEDULER_ENABLED")
	_ = viper.BindEnv("scheduler.at", "SCHEDULER_AT")

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth.jwt_secret is required")
	}

	return &cfg, nil
}
