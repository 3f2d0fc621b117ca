package config

import (
	"fmt"

	"github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const envPrefix = "SMSTEXT_"

// Config 服务配置
type Config struct {
	HTTPPort       string `env:"HTTP_PORT" envDefault:"8080"`
	DBPath         string `env:"DB_PATH" envDefault:"data/smstext.db"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string `env:"LOG_FORMAT" envDefault:"text"`
	HistoryEnabled bool   `env:"HISTORY_ENABLED" envDefault:"true"`
	MaxCapacity    int    `env:"MAX_CAPACITY" envDefault:"4096"`
	MetricsPath    string `env:"METRICS_PATH" envDefault:"/metrics"`
}

// Load 读取 .env（可选）和环境变量
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Debugf("[Config] No .env file loaded: %v", err)
	}
	return Parse(nil)
}

// Parse 从指定环境解析配置，environment 为空时使用进程环境变量
func Parse(environment map[string]string) (*Config, error) {
	cfg := &Config{}
	opts := env.Options{Prefix: envPrefix}
	if environment != nil {
		opts.Environment = environment
	}
	if err := env.Parse(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.MaxCapacity < 1 {
		return nil, fmt.Errorf("max capacity must be positive, got %d", cfg.MaxCapacity)
	}
	return cfg, nil
}

// SetupLogger 按配置设置日志级别与格式
func SetupLogger(cfg *Config) error {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}
	log.SetLevel(level)

	switch cfg.LogFormat {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("unknown log format %q", cfg.LogFormat)
	}
	return nil
}
