package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config es la configuración completa de metalbot.
type Config struct {
	API       APIConfig       `yaml:"api"`
	Batch     BatchConfig     `yaml:"batch"`
	Storage   StorageConfig   `yaml:"storage"`
	Log       LogConfig       `yaml:"log"`
	Companies []CompanyConfig `yaml:"companies"`
}

// APIConfig contiene los endpoints y credenciales del servicio de emisión.
// Key nunca viene del YAML: solo de METAL_API_KEY (.env o entorno), y nunca
// se loguea.
type APIConfig struct {
	Base            string `yaml:"base"`
	LiquidityBase   string `yaml:"liquidity_base"` // las dos fuentes del servicio divergen en este host
	MerchantAddress string `yaml:"merchant_address"`
	Key             string `yaml:"-"`
}

// BatchConfig controla el ritmo de la orquestación.
type BatchConfig struct {
	PollAttempts     int `yaml:"poll_attempts"`
	PollIntervalSecs int `yaml:"poll_interval_seconds"`
	ItemDelaySecs    int `yaml:"item_delay_seconds"` // pausa entre items de liquidez
}

// StorageConfig controla dónde se persiste el histórico.
type StorageConfig struct {
	DSN string `yaml:"dsn"` // ruta al archivo SQLite, o ":memory:"
}

// LogConfig controla el formato y nivel de logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// CompanyConfig es una compañía del host a tokenizar.
type CompanyConfig struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

// Load carga la configuración desde el archivo YAML y el archivo .env si
// existe. Las variables de entorno sobreescriben al YAML.
func Load(path string) (*Config, error) {
	// Cargar .env si existe (silencia error si no hay archivo)
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	return &cfg, nil
}

// PollInterval devuelve el intervalo de poll como time.Duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Batch.PollIntervalSecs) * time.Second
}

// ItemDelay devuelve la pausa entre items como time.Duration.
func (c *Config) ItemDelay() time.Duration {
	return time.Duration(c.Batch.ItemDelaySecs) * time.Second
}

// applyEnvOverrides sobreescribe valores con variables de entorno si están
// presentes.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("METAL_API_KEY"); v != "" {
		cfg.API.Key = v
	}
	if v := os.Getenv("METAL_MERCHANT_ADDRESS"); v != "" {
		cfg.API.MerchantAddress = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

// setDefaults asegura que los valores requeridos tengan valores sensatos.
func setDefaults(cfg *Config) {
	if cfg.API.Base == "" {
		cfg.API.Base = "https://api.metal.build"
	}
	if cfg.API.LiquidityBase == "" {
		cfg.API.LiquidityBase = cfg.API.Base
	}
	if cfg.Batch.PollAttempts <= 0 {
		cfg.Batch.PollAttempts = 60
	}
	if cfg.Batch.PollIntervalSecs <= 0 {
		cfg.Batch.PollIntervalSecs = 1
	}
	if cfg.Batch.ItemDelaySecs <= 0 {
		cfg.Batch.ItemDelaySecs = 2
	}
	if cfg.Storage.DSN == "" {
		cfg.Storage.DSN = "metalbot.db"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
