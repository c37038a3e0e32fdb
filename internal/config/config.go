package config

import (
	"strings"

	"github.com/caarlos0/env/v6"
)

type Environment string

const (
	EnvLocal      Environment = "local"
	EnvDev        Environment = "dev"
	EnvStage      Environment = "stage"
	EnvProduction Environment = "production"
)

type ConfigBasicClient struct {
	Username string
	Password string
}

type Config struct {
	App struct {
		Version  string      `env:"APP_VERSION" envDefault:"local"`
		Env      Environment `env:"APP_ENV" envDefault:"local"`
		Timezone string      `env:"APP_TIMEZONE" envDefault:"Europe/Moscow"`
	}

	HTTP struct {
		Port string `env:"HTTP_SERVER_PORT" envDefault:"8080"`
		Host string `env:"HTTP_SERVER_HOST" envDefault:"localhost"`
	}

	Store struct {
		URL            string `env:"STORE_URL"`
		Username       string `env:"STORE_USERNAME"`
		Password       string `env:"STORE_PASSWORD"`
		TimeoutSeconds int    `env:"STORE_TIMEOUT_SECONDS" envDefault:"10"`
	}

	Auth struct {
		BasicClientsString string `env:"AUTH_BASIC_CLIENTS" envDefault:"slots_resolver:slots_resolver"`
		BasicClients       []ConfigBasicClient
	}

	RabbitMq struct {
		Enabled bool   `env:"RABBITMQ_ENABLED"`
		AmqpUri string `env:"RABBITMQ_URL"`

		QueueConfig struct {
			AvailabilityQueueName     string `env:"RABBITMQ_AVAILABILITY_QUEUE" envDefault:"space-slots-resolver.availability"`
			AvailabilityQueueBind     string `env:"RABBITMQ_AVAILABILITY_QUEUE_BIND" envDefault:"booking.space-slots-resolver.availability.*.*"`
			AvailabilityQueueExchange string `env:"RABBITMQ_AVAILABILITY_QUEUE_EXCHANGE" envDefault:"booking"`

			RescheduleQueueName     string `env:"RABBITMQ_RESCHEDULE_QUEUE" envDefault:"space-slots-resolver.reschedule"`
			RescheduleQueueBind     string `env:"RABBITMQ_RESCHEDULE_QUEUE_BIND" envDefault:"booking.space-slots-resolver.event.*.reschedule"`
			RescheduleQueueExchange string `env:"RABBITMQ_RESCHEDULE_QUEUE_EXCHANGE" envDefault:"booking"`
		}
	}

	Cache struct {
		Enabled    bool `env:"CACHE_ENABLED"`
		Size       int  `env:"CACHE_SIZE" envDefault:"1000"`
		TTLMinutes int  `env:"CACHE_TTL_MINUTES" envDefault:"10"`
	}
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// Приведение окружения к нижнему регистру для унификации
	cfg.App.Env = Environment(strings.ToLower(string(cfg.App.Env)))

	// Разделение клиентов базовой авторизации
	if cfg.Auth.BasicClients == nil {
		cfg.Auth.BasicClients = []ConfigBasicClient{}
	}
	clientPairs := strings.Split(cfg.Auth.BasicClientsString, ",")
	for _, pair := range clientPairs {
		parts := strings.Split(pair, ":")
		if len(parts) == 2 {
			cfg.Auth.BasicClients = append(cfg.Auth.BasicClients, ConfigBasicClient{
				Username: parts[0],
				Password: parts[1],
			})
		}
	}

	// Без RabbitMQ некому инвалидировать кэш при изменениях конфигурации,
	// TTL сам по себе не спасает от брони по устаревшим слотам
	if !cfg.RabbitMq.Enabled {
		cfg.Cache.Enabled = false
	}

	return cfg, nil
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}

func (c *Config) IsNotLocal() bool {
	return c.App.Env == EnvDev || c.App.Env == EnvStage || c.App.Env == EnvProduction
}
