package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Config reúne tudo que a API e o worker leem do ambiente.
type Config struct {
	AppEnv        string
	HTTPPort      string
	HTTPTimeout   time.Duration
	LogLevel      string
	StorageDriver string

	DBUser      string
	DBPassword  string
	DBHost      string
	DBPort      string
	DBName      string
	DBIsolation string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	SessionTTL    time.Duration

	RabbitUser string
	RabbitPass string
	RabbitHost string

	MongoUser string
	MongoPass string
	MongoHost string
	MongoDB   string

	BcryptCost int
}

// LoadDotEnv carrega o .env se existir.
// O erro é ignorado de propósito, pois em Produção (Docker/K8s)
// não usamos arquivo .env, usamos variáveis reais do sistema.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("Arquivo .env não encontrado, usando variáveis de ambiente do sistema")
	}
}

// Load lê as variáveis com fallback para o ambiente de dev local.
func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:        getEnv("APP_ENV", "development"),
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		StorageDriver: getEnv("STORAGE_DRIVER", StorageDriverPostgres),

		DBUser:      getEnv("DB_USER", "brbank"),
		DBPassword:  getEnv("DB_PASSWORD", "secret123"),
		DBHost:      getEnv("DB_HOST", "localhost"), // Em docker seria o nome do service
		DBPort:      getEnv("DB_PORT", "5432"),
		DBName:      getEnv("DB_NAME", "brbank"),
		DBIsolation: getEnv("DB_ISOLATION", "read_committed"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		RabbitUser: getEnv("RABBITMQ_USER", "guest"),
		RabbitPass: getEnv("RABBITMQ_PASS", "guest"),
		RabbitHost: getEnv("RABBITMQ_HOST", "localhost"),

		MongoUser: os.Getenv("MONGO_USER"),
		MongoPass: os.Getenv("MONGO_PASS"),
		MongoHost: getEnv("MONGO_HOST", "localhost:27017"),
		MongoDB:   getEnv("MONGO_DB", "brbank_notifications"),
	}

	var err error
	if cfg.HTTPTimeout, err = getDuration("HTTP_TIMEOUT", 60*time.Second); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = getDuration("SESSION_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.BcryptCost, err = getInt("BCRYPT_COST", 10); err != nil {
		return nil, err
	}

	switch cfg.StorageDriver {
	case StorageDriverPostgres, StorageDriverMemory:
	default:
		return nil, fmt.Errorf("STORAGE_DRIVER inválido: %q (use postgres ou memory)", cfg.StorageDriver)
	}

	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// DatabaseURL monta a DSN com url.URL para escapar credenciais (senha com @, / ou :).
func (c *Config) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func (c *Config) RabbitURL() string {
	u := url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(c.RabbitUser, c.RabbitPass),
		Host:   net.JoinHostPort(c.RabbitHost, "5672"),
		Path:   "/",
	}
	return u.String()
}

// MongoURI: MONGO_HOST já vem com a porta (host:27017).
func (c *Config) MongoURI() string {
	u := url.URL{Scheme: "mongodb", Host: c.MongoHost}
	if c.MongoUser != "" {
		u.User = url.UserPassword(c.MongoUser, c.MongoPass)
	}
	return u.String()
}

// SetupLogger configura o zerolog global: console colorido em dev, JSON fora dele.
func (c *Config) SetupLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if c.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}) // Log bonito no terminal
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s inválido: %w", key, err)
	}
	return d, nil
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s inválido: %w", key, err)
	}
	return n, nil
}
