package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/awsl-project/localnotes/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file.
const (
	EnvDataDir  = "LOCALNOTES_DATA_DIR"
	EnvLogLevel = "LOCALNOTES_LOG_LEVEL"
)

// Config 应用配置
type Config struct {
	DataDir  string       `yaml:"-" validate:"required"`
	LogLevel string       `yaml:"log_level" validate:"oneof=trace debug info warn error"`
	Window   WindowConfig `yaml:"window"`
}

// WindowConfig 主窗口选项
type WindowConfig struct {
	Width       int  `yaml:"width" validate:"gte=400"`
	Height      int  `yaml:"height" validate:"gte=300"`
	StartHidden bool `yaml:"start_hidden"`
	// CloseToTray 关闭主窗口时隐藏到托盘而不是退出（macOS 上没有托盘，此项无效）
	CloseToTray bool `yaml:"close_to_tray"`
}

// Default 默认配置
func Default() Config {
	return Config{
		DataDir:  DefaultDataDir(),
		LogLevel: "info",
		Window: WindowConfig{
			Width:       1024,
			Height:      720,
			CloseToTray: true,
		},
	}
}

// DefaultDataDir 每个平台的应用数据目录
// Linux: $XDG_DATA_HOME/<app id>，macOS: ~/Library/Application Support/<app id>，Windows: %LOCALAPPDATA%/<app id>
func DefaultDataDir() string {
	return filepath.Join(xdg.DataHome, domain.AppID)
}

// Load 解析数据目录并加载配置
// 优先级：dataDir 参数 > 环境变量 > 默认目录；配置文件不存在时使用默认值
func Load(dataDir string) (Config, error) {
	cfg := Default()

	switch {
	case dataDir != "":
		cfg.DataDir = dataDir
	case os.Getenv(EnvDataDir) != "":
		cfg.DataDir = os.Getenv(EnvDataDir)
	}

	expanded, err := homedir.Expand(cfg.DataDir)
	if err != nil {
		return cfg, fmt.Errorf("failed to expand data dir %q: %w", cfg.DataDir, err)
	}
	cfg.DataDir = expanded

	f, err := os.Open(cfg.Path())
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("failed to open config: %w", err)
	default:
		defer f.Close()
		if err := cfg.decode(f); err != nil {
			return cfg, err
		}
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.LogLevel = level
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse %s: %w", domain.ConfigFileName, err)
	}
	return nil
}

// Validate 校验配置
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Path 配置文件路径
func (c Config) Path() string {
	return filepath.Join(c.DataDir, domain.ConfigFileName)
}

// DatabasePath 主数据库路径
func (c Config) DatabasePath() string {
	return filepath.Join(c.DataDir, domain.DatabaseFileName)
}

// LogPath 日志文件路径
func (c Config) LogPath() string {
	return filepath.Join(c.DataDir, domain.LogFileName)
}

// EnsureDataDir 创建数据目录
func (c Config) EnsureDataDir() error {
	if err := os.MkdirAll(c.DataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", c.DataDir, err)
	}
	return nil
}

// Save 写回配置文件
func (c Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(c.Path(), data, 0o644)
}
