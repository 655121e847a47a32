package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// 默认值
const (
	defaultHost           = "0.0.0.0"
	defaultPort           = 1780
	defaultMaxConnections = 1000
	defaultRedisAddr      = "localhost:6379"

	defaultCountdownTicks   = 3
	defaultTickInterval     = 1000
	defaultCountdownTimeout = 5000
	defaultRoundDelay       = 2000
	defaultMaxRounds        = 5

	defaultRateMaxPerSecond = 10
	defaultRateMaxPerMinute = 60
	defaultRateBanDuration  = 60
)

// Config 服务端配置
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Redis    RedisConfig    `yaml:"redis"`
	Game     GameConfig     `yaml:"game"`
	Security SecurityConfig `yaml:"security"`
}

// ServerConfig WebSocket 服务器配置
type ServerConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	MaxConnections int    `yaml:"max_connections"`
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// GameConfig 对局配置
type GameConfig struct {
	CountdownTicks   int `yaml:"countdown_ticks"`      // 倒计时起始值（3 → 3,2,1）
	TickInterval     int `yaml:"tick_interval_ms"`     // 倒计时 tick 间隔（毫秒）
	CountdownTimeout int `yaml:"countdown_timeout_ms"` // 倒计时硬超时（毫秒），防止计时器泄漏
	RoundDelay       int `yaml:"round_delay_ms"`       // 回合结算后的展示延迟（毫秒）
	MaxRounds        int `yaml:"max_rounds"`           // 每局回合数
}

// SecurityConfig 安全配置
type SecurityConfig struct {
	AllowedOrigins []string        `yaml:"allowed_origins"`
	RateLimit      RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig 连接速率限制配置
type RateLimitConfig struct {
	MaxPerSecond int `yaml:"max_per_second"`
	MaxPerMinute int `yaml:"max_per_minute"`
	BanDuration  int `yaml:"ban_duration"` // 封禁时长（秒）
}

// TickIntervalDuration 返回倒计时 tick 间隔
func (c *GameConfig) TickIntervalDuration() time.Duration {
	return time.Duration(c.TickInterval) * time.Millisecond
}

// CountdownTimeoutDuration 返回倒计时硬超时
func (c *GameConfig) CountdownTimeoutDuration() time.Duration {
	return time.Duration(c.CountdownTimeout) * time.Millisecond
}

// RoundDelayDuration 返回回合结算展示延迟
func (c *GameConfig) RoundDelayDuration() time.Duration {
	return time.Duration(c.RoundDelay) * time.Millisecond
}

// BanDurationTime 返回封禁时长
func (c *RateLimitConfig) BanDurationTime() time.Duration {
	return time.Duration(c.BanDuration) * time.Second
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	cfg.loadFromEnv()

	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.loadFromEnv()
	return cfg
}

// applyDefaults 填充缺省值
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = defaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = defaultPort
	}
	if c.Server.MaxConnections == 0 {
		c.Server.MaxConnections = defaultMaxConnections
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = defaultRedisAddr
	}
	if c.Game.CountdownTicks == 0 {
		c.Game.CountdownTicks = defaultCountdownTicks
	}
	if c.Game.TickInterval == 0 {
		c.Game.TickInterval = defaultTickInterval
	}
	if c.Game.CountdownTimeout == 0 {
		c.Game.CountdownTimeout = defaultCountdownTimeout
	}
	if c.Game.RoundDelay == 0 {
		c.Game.RoundDelay = defaultRoundDelay
	}
	if c.Game.MaxRounds == 0 {
		c.Game.MaxRounds = defaultMaxRounds
	}
	if len(c.Security.AllowedOrigins) == 0 {
		c.Security.AllowedOrigins = []string{"*"}
	}
	if c.Security.RateLimit.MaxPerSecond == 0 {
		c.Security.RateLimit.MaxPerSecond = defaultRateMaxPerSecond
	}
	if c.Security.RateLimit.MaxPerMinute == 0 {
		c.Security.RateLimit.MaxPerMinute = defaultRateMaxPerMinute
	}
	if c.Security.RateLimit.BanDuration == 0 {
		c.Security.RateLimit.BanDuration = defaultRateBanDuration
	}
}

// loadFromEnv 环境变量覆盖（用于容器部署）
func (c *Config) loadFromEnv() {
	if v := os.Getenv("SERVER_HOST"); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("GAME_MAX_ROUNDS"); v != "" {
		if rounds, err := strconv.Atoi(v); err == nil {
			c.Game.MaxRounds = rounds
		}
	}
	if v := os.Getenv("SECURITY_ALLOWED_ORIGINS"); v != "" {
		c.Security.AllowedOrigins = strings.Split(v, ",")
	}
}
