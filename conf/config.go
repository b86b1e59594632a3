package conf

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	ModeStandalone = "standalone"
	ModeCluster    = "cluster"

	AcceptorTCP = "tcp"
	AcceptorWS  = "ws"

	EnvPrefix = "TING"
)

type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Scan   ScanConfig   `mapstructure:"scan"`
	Server ServerConfig `mapstructure:"server"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Dir        string `mapstructure:"dir"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

type ScanConfig struct {
	Parallel   bool `mapstructure:"parallel"`
	Simplified bool `mapstructure:"simplified"`
}

type ServerConfig struct {
	Type     string `mapstructure:"type"`
	Mode     string `mapstructure:"mode"`
	Frontend bool   `mapstructure:"frontend"`
	Acceptor string `mapstructure:"acceptor"`
	Addr     string `mapstructure:"addr"`
}

// NewViper 带默认值并读取 TING_* 环境变量，如 TING_LOG_LEVEL 对应 log.level
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", "./logs")
	v.SetDefault("log.max_age_days", 7)
	v.SetDefault("scan.parallel", false)
	v.SetDefault("scan.simplified", false)
	v.SetDefault("server.type", "ting")
	v.SetDefault("server.mode", ModeStandalone)
	v.SetDefault("server.frontend", true)
	v.SetDefault("server.acceptor", AcceptorTCP)
	v.SetDefault("server.addr", ":3250")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load 读取配置文件(可为空)，解码并校验
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

var (
	ErrInvalidMode     = errors.New("invalid server mode")
	ErrInvalidAcceptor = errors.New("invalid acceptor")
)

func (c *Config) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	switch c.Server.Mode {
	case ModeStandalone, ModeCluster:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, c.Server.Mode)
	}
	switch c.Server.Acceptor {
	case AcceptorTCP, AcceptorWS:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidAcceptor, c.Server.Acceptor)
	}
	if c.Log.MaxAgeDays <= 0 {
		return fmt.Errorf("log.max_age_days must be positive, got %d", c.Log.MaxAgeDays)
	}
	return nil
}

func (c *Config) LogLevel() (logrus.Level, error) {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

func (c *Config) LogMaxAge() time.Duration {
	return time.Duration(c.Log.MaxAgeDays) * 24 * time.Hour
}
