package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации приложения.
// Содержит настройки мира, генерации и сервисные порты.

type Config struct {
	World  WorldConfig  `yaml:"world"`
	Server ServerConfig `yaml:"server"`
}

type WorldConfig struct {
	Seed          int64   `yaml:"seed"`
	PregenRadius  int     `yaml:"pregen_radius"` // Радиус предгенерации в чанках
	NoiseScale    float64 `yaml:"noise_scale"`
	ForestDensity float64 `yaml:"forest_density"`
}

type ServerConfig struct {
	MetricsPort int `yaml:"metrics_port"`
}

// GetMetricsPort возвращает Prometheus метрики порт с поддержкой fallback значений
func (s *ServerConfig) GetMetricsPort() int {
	return getPortWithEnvFallback(s.MetricsPort, "WORLD_METRICS_PORT", 2112)
}

// getPortWithEnvFallback возвращает порт с приоритетом: config -> env -> default
func getPortWithEnvFallback(configPort int, envVar string, defaultPort int) int {
	// Если порт задан в конфиге и больше 0, используем его
	if configPort > 0 {
		return configPort
	}

	// Пробуем прочитать из environment variable
	if envVal := os.Getenv(envVar); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	// Используем дефолтное значение
	return defaultPort
}

// Seed возвращает сид мира; 0 в конфиге означает дефолтный сид
func (w *WorldConfig) GetSeed() int64 {
	if w.Seed != 0 {
		return w.Seed
	}
	if envVal := os.Getenv("WORLD_SEED"); envVal != "" {
		if seed, err := strconv.ParseInt(envVal, 10, 64); err == nil {
			return seed
		}
	}
	return 12345
}

// GetPregenRadius возвращает радиус предгенерации (в чанках)
func (w *WorldConfig) GetPregenRadius() int {
	if w.PregenRadius > 0 {
		return w.PregenRadius
	}
	return 4
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV WORLD_CONFIG или возвращает nil, nil.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("WORLD_CONFIG")
		if path == "" {
			return nil, nil // конфиг не задан — использовать дефолты
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
