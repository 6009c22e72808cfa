// Package configs provides configuration structures and utilities for the
// cookware storefront. It offers mechanisms for loading, validating, and
// saving configuration from JSON and YAML files, and Viper-based hot
// reloading so pricing rules can change without a restart.
//
// Package configs 提供厨具商店的配置结构和工具。
// 它提供从JSON和YAML文件加载、验证和保存配置的机制，
// 以及基于Viper的热重载，使定价规则无需重启即可更改。
package configs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for the storefront.
// It contains all settings needed to run the service, organized into
// logical sections for different components.
//
// Config 表示商店的完整配置。
// 它包含运行服务所需的所有设置，按不同组件的逻辑部分进行组织。
type Config struct {
	// Server contains HTTP server settings
	// Server 包含HTTP服务器设置
	Server ServerConfig `json:"server" yaml:"server" mapstructure:"server"`

	// Pricing contains the cart pricing constants
	// Pricing 包含购物车定价常量
	Pricing PricingConfig `json:"pricing" yaml:"pricing" mapstructure:"pricing"`

	// Catalog controls where the product catalog is loaded from
	// Catalog 控制从哪里加载产品目录
	Catalog CatalogConfig `json:"catalog" yaml:"catalog" mapstructure:"catalog"`

	// Storage defines the backend used to persist cart state
	// Storage 定义用于持久化购物车状态的后端
	Storage StorageConfig `json:"storage" yaml:"storage" mapstructure:"storage"`

	// Log configures the logging behavior
	// Log 配置日志行为
	Log LogConfig `json:"log" yaml:"log" mapstructure:"log"`
}

// ServerConfig contains settings for the HTTP server.
//
// ServerConfig 包含HTTP服务器的设置。
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080"
	// Addr 是监听地址，例如":8080"
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// Mode is the Gin mode ("debug", "release", "test")
	// Mode 是Gin模式（"debug"、"release"、"test"）
	Mode string `json:"mode" yaml:"mode" mapstructure:"mode"`

	// ReadTimeout bounds how long reading a request may take
	// ReadTimeout 限制读取请求的最长时间
	ReadTimeout time.Duration `json:"read_timeout" yaml:"read_timeout" mapstructure:"read_timeout"`

	// WriteTimeout bounds how long writing a response may take
	// WriteTimeout 限制写入响应的最长时间
	WriteTimeout time.Duration `json:"write_timeout" yaml:"write_timeout" mapstructure:"write_timeout"`

	// ShutdownTimeout bounds graceful shutdown on exit
	// ShutdownTimeout 限制退出时优雅关闭的时间
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// PricingConfig contains the cart pricing constants. Amounts are integer
// minor units (cents) and the tax rate is in basis points, so derived
// totals are exact.
//
// PricingConfig 包含购物车定价常量。金额为整数最小货币单位（分），
// 税率以基点表示，因此推导出的总价是精确的。
type PricingConfig struct {
	// TaxRateBps is the flat tax rate in basis points (800 = 8%)
	// TaxRateBps 是以基点表示的统一税率（800 = 8%）
	TaxRateBps int64 `json:"tax_rate_bps" yaml:"tax_rate_bps" mapstructure:"tax_rate_bps"`

	// FreeShippingThresholdCents is the subtotal above which shipping is free
	// FreeShippingThresholdCents 是免运费的小计阈值（分）
	FreeShippingThresholdCents int64 `json:"free_shipping_threshold_cents" yaml:"free_shipping_threshold_cents" mapstructure:"free_shipping_threshold_cents"`

	// ShippingFeeCents is the flat shipping fee below the threshold
	// ShippingFeeCents 是低于阈值时的固定运费（分）
	ShippingFeeCents int64 `json:"shipping_fee_cents" yaml:"shipping_fee_cents" mapstructure:"shipping_fee_cents"`
}

// CatalogConfig controls catalog loading.
//
// CatalogConfig 控制目录加载。
type CatalogConfig struct {
	// DataFile is an optional path to a catalog YAML file. When empty the
	// catalog compiled into the binary is used.
	// DataFile 是目录YAML文件的可选路径。为空时使用编译进二进制的目录。
	DataFile string `json:"data_file" yaml:"data_file" mapstructure:"data_file"`
}

// StorageConfig contains settings for the cart persistence backend.
//
// StorageConfig 包含购物车持久化后端的设置。
type StorageConfig struct {
	// Backend selects the implementation ("memory", "file", "redis")
	// Backend 选择实现（"memory"、"file"、"redis"）
	Backend string `json:"backend" yaml:"backend" mapstructure:"backend"`

	// ShardCount is the shard count for the memory backend (power of 2)
	// ShardCount 是内存后端的分片数量（2的幂）
	ShardCount int `json:"shard_count" yaml:"shard_count" mapstructure:"shard_count"`

	// FilePath is the snapshot path for the file backend
	// FilePath 是文件后端的快照路径
	FilePath string `json:"file_path" yaml:"file_path" mapstructure:"file_path"`

	// RedisAddr is the host:port of the Redis server for the redis backend
	// RedisAddr 是redis后端的Redis服务器地址（host:port）
	RedisAddr string `json:"redis_addr" yaml:"redis_addr" mapstructure:"redis_addr"`

	// RedisPassword is the optional Redis password
	// RedisPassword 是可选的Redis密码
	RedisPassword string `json:"redis_password" yaml:"redis_password" mapstructure:"redis_password"`

	// RedisDB is the logical Redis database number
	// RedisDB 是Redis逻辑数据库编号
	RedisDB int `json:"redis_db" yaml:"redis_db" mapstructure:"redis_db"`
}

// LogConfig contains settings for logging.
//
// LogConfig 包含日志记录的设置。
type LogConfig struct {
	// Level sets the minimum log level ("debug", "info", "warn", "error")
	// Level 设置最低日志级别（"debug"、"info"、"warn"、"error"）
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format specifies the log format ("text", "json")
	// Format 指定日志格式（"text"、"json"）
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// DefaultConfig returns a new Config with default values.
// This provides a starting point with reasonable defaults for all
// settings, which can then be customized as needed.
//
// DefaultConfig 返回具有默认值的新Config。
// 这为所有设置提供了合理的默认起点，然后可以根据需要进行自定义。
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			Mode:            "release",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Pricing: PricingConfig{
			TaxRateBps:                 800,
			FreeShippingThresholdCents: 9900,
			ShippingFeeCents:           999,
		},
		Catalog: CatalogConfig{
			DataFile: "",
		},
		Storage: StorageConfig{
			Backend:    "memory",
			ShardCount: 16,
			FilePath:   "data/carts.json",
			RedisAddr:  "localhost:6379",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Validate checks the configuration for invalid values.
//
// Validate 检查配置中的无效值。
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode must be one of debug, release, test; got %q", c.Server.Mode)
	}
	if c.Pricing.TaxRateBps < 0 || c.Pricing.TaxRateBps > 10000 {
		return fmt.Errorf("pricing.tax_rate_bps must be between 0 and 10000; got %d", c.Pricing.TaxRateBps)
	}
	if c.Pricing.FreeShippingThresholdCents < 0 {
		return fmt.Errorf("pricing.free_shipping_threshold_cents must not be negative")
	}
	if c.Pricing.ShippingFeeCents < 0 {
		return fmt.Errorf("pricing.shipping_fee_cents must not be negative")
	}
	switch c.Storage.Backend {
	case "memory", "file", "redis":
	default:
		return fmt.Errorf("storage.backend must be one of memory, file, redis; got %q", c.Storage.Backend)
	}
	if c.Storage.Backend == "file" && c.Storage.FilePath == "" {
		return fmt.Errorf("storage.file_path must be set for the file backend")
	}
	if c.Storage.Backend == "redis" && c.Storage.RedisAddr == "" {
		return fmt.Errorf("storage.redis_addr must be set for the redis backend")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error; got %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json; got %q", c.Log.Format)
	}
	return nil
}

// LoadFromFile loads a configuration from a YAML or JSON file, selected
// by file extension.
//
// LoadFromFile 从YAML或JSON文件加载配置，由文件扩展名决定格式。
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// SaveToFile writes the configuration to a YAML or JSON file, selected by
// file extension.
//
// SaveToFile 将配置写入YAML或JSON文件，由文件扩展名决定格式。
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	case ".json":
		data, err = json.MarshalIndent(c, "", "  ")
	default:
		return fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
