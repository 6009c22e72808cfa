// Package configs provides configuration structures and utilities for the
// cookware storefront. This file implements Viper-based configuration
// management with hot reloading support.
//
// Package configs 提供厨具商店的配置结构和工具。
// 本文件实现基于Viper的配置管理，支持热重载。
package configs

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// ViperConfig wraps a Config with Viper functionality for hot reloading.
// It provides thread-safe access to configuration and supports dynamic
// updates when the underlying configuration file changes — pricing rule
// changes take effect on the next request without a restart.
//
// ViperConfig 使用Viper功能包装Config以支持热重载。
// 它提供对配置的线程安全访问，并支持在底层配置文件更改时进行动态更新 ——
// 定价规则的更改在下一个请求时生效，无需重启。
type ViperConfig struct {
	*Config                     // Embedded configuration / 嵌入的配置
	viper       *viper.Viper    // Viper instance for configuration management / 用于配置管理的Viper实例
	configFile  string          // Path to the configuration file / 配置文件路径
	mu          sync.RWMutex    // Mutex for thread-safe access / 用于线程安全访问的互斥锁
	subscribers []func(*Config) // Subscribers notified on config changes / 配置更改时要通知的订阅者
}

// NewViperConfig creates a new ViperConfig.
// It loads configuration from the specified file and validates it.
//
// NewViperConfig 创建一个新的ViperConfig。
// 它从指定的文件加载配置并验证它。
func NewViperConfig(configFile string) (*ViperConfig, error) {
	v := viper.New()

	v.SetConfigFile(configFile)
	ext := filepath.Ext(configFile)
	v.SetConfigType(strings.TrimPrefix(ext, "."))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &ViperConfig{
		Config:      config,
		viper:       v,
		configFile:  configFile,
		subscribers: make([]func(*Config), 0),
	}, nil
}

// EnableHotReload enables hot reloading of the configuration file.
// When the file changes, the configuration is reloaded, validated and all
// subscribers are notified. An invalid edit keeps the previous config.
//
// EnableHotReload 启用配置文件的热重载。
// 当文件更改时，配置会重新加载、验证，并通知所有订阅者。
// 无效的编辑保留先前的配置。
func (vc *ViperConfig) EnableHotReload() {
	vc.viper.WatchConfig()
	vc.viper.OnConfigChange(func(e fsnotify.Event) {
		slog.Info("config_file_changed", "file", e.Name)

		newConfig := DefaultConfig()
		if err := vc.viper.Unmarshal(newConfig); err != nil {
			slog.Warn("config_reload_failed", "error", err)
			return
		}
		if err := newConfig.Validate(); err != nil {
			slog.Warn("config_reload_invalid", "error", err)
			return
		}

		vc.apply(newConfig)
	})
}

// apply swaps in a new configuration and notifies all subscribers.
//
// apply 换入新配置并通知所有订阅者。
func (vc *ViperConfig) apply(newConfig *Config) {
	vc.mu.Lock()
	vc.Config = newConfig
	subscribers := make([]func(*Config), len(vc.subscribers))
	copy(subscribers, vc.subscribers)
	vc.mu.Unlock()

	for _, subscriber := range subscribers {
		subscriber(newConfig)
	}
}

// Subscribe adds a subscriber that is called with the new configuration
// whenever it changes.
//
// Subscribe 添加一个订阅者，配置更改时将以新配置调用它。
func (vc *ViperConfig) Subscribe(subscriber func(*Config)) {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	vc.subscribers = append(vc.subscribers, subscriber)
}

// Get returns the current configuration.
// This method is thread-safe and can be called concurrently.
//
// Get 返回当前配置。此方法是线程安全的，可以并发调用。
func (vc *ViperConfig) Get() *Config {
	vc.mu.RLock()
	defer vc.mu.RUnlock()
	return vc.Config
}

// LoadViperConfig loads a configuration from a file using Viper and
// optionally enables hot reloading.
//
// LoadViperConfig 使用Viper从文件加载配置，并可选地启用热重载。
func LoadViperConfig(configFile string, enableHotReload bool) (*ViperConfig, error) {
	vc, err := NewViperConfig(configFile)
	if err != nil {
		return nil, err
	}
	if enableHotReload {
		vc.EnableHotReload()
	}
	return vc, nil
}

// Static wraps an already-built Config in a ViperConfig without file
// backing. It is used when the service runs on defaults and in tests.
//
// Static 将已构建的Config包装为没有文件支持的ViperConfig。
// 用于服务以默认值运行时以及测试中。
func Static(config *Config) *ViperConfig {
	return &ViperConfig{
		Config:      config,
		subscribers: make([]func(*Config), 0),
	}
}
