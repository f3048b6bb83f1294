// Package config предоставялет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env                     string `yaml:"env" env:"ENV" env-default:"local"`
	StorageConnectionString string `yaml:"storage_connection_string" env:"STORAGE_CONNECTION_STRING" env-required:"true"`
	MigrationsPath          string `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"./migrations"`
	HTTPServer              `yaml:"http_server"`
	GRPCServer              `yaml:"grpc_server"`
	Guard                   `yaml:"guard"`
	App                     `yaml:"app"`
	Entitlement             `yaml:"entitlement"`
	Updates                 `yaml:"updates"`
	RateLimit               `yaml:"rate_limit"`
	RabbitMQ                `yaml:"rabbitmq"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP     string        `yaml:"addresshttp" env:"HTTP_ADDRESS" env-default:"0.0.0.0:3000"`
	TimeoutHTTP     time.Duration `yaml:"timeouthttp" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"15s"`
}

// GRPCServer структура для настройки gRPC health-сервера. Пустой адрес отключает сервер.
type GRPCServer struct {
	AddressGRPC   string        `yaml:"addressgrpc" env:"GRPC_ADDRESS"`
	ProbeInterval time.Duration `yaml:"probe_interval" env-default:"10s"`
}

// Guard структура с учётными данными клиента
type Guard struct {
	APIKey    string `yaml:"api_key" env:"API_KEY" env-required:"true"`
	UserAgent string `yaml:"user_agent" env:"USER_AGENT" env-default:"CustomClient/1.0"`
}

// App структура с версией приложения
type App struct {
	Version string `yaml:"version" env:"APP_VERSION" env-default:"1.0"`
}

// Entitlement структура для настройки выдачи подписок
type Entitlement struct {
	DefaultType string `yaml:"default_type" env:"DEFAULT_ENTITLEMENT" env-default:"Standard"`
	DefaultDays int    `yaml:"default_days" env-default:"30"`
}

// Updates структура для раздачи обновлений клиента
type Updates struct {
	UpdatesDir       string `yaml:"dir" env:"UPDATES_DIR" env-default:"/opt/auth-api/updates"`
	DownloadURL      string `yaml:"download_url" env:"UPDATE_DOWNLOAD_URL"`
	PublicBaseURL    string `yaml:"public_base_url" env:"PUBLIC_BASE_URL" env-default:"http://localhost:3000"`
	ArtifactTemplate string `yaml:"artifact_template" env-default:"UpdateAssistant_v%s.exe"`
}

// RateLimit структура для ограничения частоты запросов по IP.
// Если RedisAddress пуст, счётчики хранятся в памяти процесса.
// TrustProxy включает чтение IP клиента из X-Forwarded-For и X-Real-IP;
// включать только за собственным обратным прокси.
type RateLimit struct {
	Requests      int           `yaml:"requests" env-default:"100"`
	Window        time.Duration `yaml:"window" env-default:"15m"`
	TrustProxy    bool          `yaml:"trust_proxy" env:"RATE_LIMIT_TRUST_PROXY"`
	RedisAddress  string        `yaml:"redis_address" env:"RATE_LIMIT_REDIS_ADDRESS"`
	RedisPassword string        `yaml:"redis_password" env:"RATE_LIMIT_REDIS_PASSWORD"`
	RedisDB       int           `yaml:"redis_db"`
}

// RabbitMQ структура для публикации событий аудита. Пустой URL отключает публикацию.
type RabbitMQ struct {
	AMQPURL  string        `yaml:"url" env:"RABBITMQ_URL"`
	Exchange string        `yaml:"exchange" env-default:"license.audit"`
	Retries  int           `yaml:"retries" env-default:"5"`
	Delay    time.Duration `yaml:"delay" env-default:"2s"`
}

// MustLoad функция для загрузки конфига по пути из CONFIG_PATH, завершает процесс при ошибке
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

// Load читает конфиг из файла и переменных окружения
func Load(configPath string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"GRPCServer:\n"+
			"  Address: %s\n"+
			"Guard:\n"+
			"  APIKey: %s\n"+
			"  UserAgent: %s\n"+
			"App:\n"+
			"  Version: %s\n"+
			"RateLimit:\n"+
			"  Requests: %d per %s\n"+
			"  Redis: %s\n",
		c.Env,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.AddressGRPC,
		mask(c.APIKey),
		c.UserAgent,
		c.Version,
		c.Requests,
		c.Window,
		c.RedisAddress,
	)
}

func mask(secret string) string {
	if len(secret) <= 8 {
		return "****"
	}
	return secret[:4] + "****" + secret[len(secret)-4:]
}
