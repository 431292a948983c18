package configuration

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"berta-backend/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App         App         `json:"app"`
	Logger      Logger      `json:"logger"`
	YouTube     YouTube     `json:"youtube"`
	Cache       Cache       `json:"cache"`
	Trend       Trend       `json:"trend"`
	RedisClient RedisClient `json:"redisClient"`
}

type App struct {
	Port int `json:"port"`
}

type Logger struct {
	Format string `json:"format"`
}

type YouTube struct {
	APIKey         string `json:"apiKey"`
	ChannelID      string `json:"channelId"`
	MaxResults     int64  `json:"maxResults"`
	RequestTimeout string `json:"requestTimeout"`
}

// Cache configures the document store. Backend is "file" (default) or
// "redis". StaleTime and SweepInterval are Go duration strings.
type Cache struct {
	Path          string `json:"path"`
	Backend       string `json:"backend"`
	StaleTime     string `json:"staleTime"`
	SweepInterval string `json:"sweepInterval"`
}

type Trend struct {
	Period     int `json:"period"`
	HistoryCap int `json:"historyCap"`
}

type RedisClient struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
}

var C Config

func init() {
	LoadConfig()
	initApp(&C)
	initCache(&C)
	initTrend(&C)
}

// Reload re-resolves the configuration, picking up env vars that were
// loaded after package init (e.g. from env files).
func Reload() {
	LoadConfig()
	initApp(&C)
	initCache(&C)
	initTrend(&C)
}

func LoadConfig() {
	name := getConfigName()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found, relying on defaults and environment")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
}

func getConfigName() string {
	name := "config"
	if env := os.Getenv("ENV"); env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initApp(C *Config) {
	// Port resolution order (env overrides config): APP_PORT -> PORT -> config -> default 5555
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 5555
	}
}

func initCache(C *Config) {
	if v := os.Getenv("CACHE_PATH"); v != "" {
		C.Cache.Path = v
	}
	if C.Cache.Path == "" {
		C.Cache.Path = "files/berta-cache"
	}
	if v := os.Getenv("CACHE_BACKEND"); v != "" {
		C.Cache.Backend = v
	}
	if C.Cache.Backend == "" {
		C.Cache.Backend = "file"
	}
	if v := os.Getenv("CACHE_STALE_TIME"); v != "" {
		C.Cache.StaleTime = v
	}
	if v := os.Getenv("CACHE_SWEEP_INTERVAL"); v != "" {
		C.Cache.SweepInterval = v
	}
}

func initTrend(C *Config) {
	if C.Trend.Period <= 0 {
		C.Trend.Period = 14
	}
	if C.Trend.HistoryCap <= 0 {
		C.Trend.HistoryCap = 3 * C.Trend.Period
	}
}

// StaleDuration returns the configured staleness window. Outside prod the
// window is stretched 100x so local runs don't burn API quota.
func (c Cache) StaleDuration() time.Duration {
	d := parseDuration(c.StaleTime, 24*time.Hour)
	if env := os.Getenv("ENV"); env != "prod" && env != "production" {
		d *= 100
	}
	return d
}

// SweepEvery returns the background sweep interval.
func (c Cache) SweepEvery() time.Duration {
	return parseDuration(c.SweepInterval, time.Hour)
}

// Timeout returns the per-request timeout for outbound API calls.
func (y YouTube) Timeout() time.Duration {
	return parseDuration(y.RequestTimeout, 30*time.Second)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		logger.GetLogger().WithField("value", raw).Warn("Invalid duration in config, using default")
		return fallback
	}
	return d
}
