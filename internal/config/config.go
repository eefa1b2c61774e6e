package config

import (
	"log"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	once     sync.Once
	instance *Config
)

// DefaultPageSize сколько книг показывается за одну страницу выдачи
const DefaultPageSize = 36

// CatalogConfig откуда грузится каталог (источник read-only, читается один раз)
type CatalogConfig struct {
	Source string `yaml:"source"` // "json" или "sqlite"
	Path   string `yaml:"path"`
}

// BrowseConfig настройки выдачи и темы по умолчанию
type BrowseConfig struct {
	PageSize int    `yaml:"page_size"`
	Theme    string `yaml:"theme"`
}

// CLIConfig настройки для CLI (не сервис)
type CLIConfig struct {
	Debug   bool   `yaml:"debug"`
	History string `yaml:"history"`
}

// MetricsConfig настройки для экспортера метрик (0 = выключено)
type MetricsConfig struct {
	Port int `yaml:"port"`
}

// Config корень дерева конфигурации, строго соответствующий polka.yaml
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Browse  BrowseConfig  `yaml:"browse"`
	CLI     CLIConfig     `yaml:"cli"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// Get возвращает инициализированный объект конфигурации (Singleton)
func Get() *Config {
	once.Do(func() {
		path := os.Getenv("POLKA_CONFIG")
		explicit := path != ""
		if path == "" {
			path = "polka.yaml"
		}

		instance = &Config{}
		f, err := os.ReadFile(path)
		if err != nil {
			if explicit {
				log.Fatalf("[CONFIG ERROR] Could not read %s: %v", path, err)
			}
			// polka.yaml рядом нет — работаем на дефолтах
			instance.applyDefaults()
			return
		}

		if err := yaml.Unmarshal(f, instance); err != nil {
			log.Fatalf("[CONFIG ERROR] Failed to parse YAML: %v", err)
		}
		instance.applyDefaults()
	})
	return instance
}

func (c *Config) applyDefaults() {
	if c.Catalog.Source == "" {
		c.Catalog.Source = "json"
	}
	if c.Catalog.Path == "" {
		c.Catalog.Path = "catalog.json"
	}
	if c.Browse.PageSize <= 0 {
		c.Browse.PageSize = DefaultPageSize
	}
	if c.Browse.Theme == "" {
		c.Browse.Theme = "day"
	}
	if c.CLI.History == "" {
		c.CLI.History = ".polka_history"
	}
}
