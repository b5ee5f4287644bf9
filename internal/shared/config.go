package shared

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv         string
	LogLevel       string
	BackendBaseURL string
	BackendTimeout time.Duration
	BackendRPS     int
	SessionStore   string // file|redis|mysql
	ConsoleHome    string
	RedisAddr      string
	RedisPass      string
	RedisDB        int
	MySQLDSN       string
	HTTPAddr       string
	MetricsAddr    string
	Output         string // table|json|yaml
}

// Load reads configuration from the environment (a .env file in the working
// directory is applied first) and from cfgFile, or ~/.hotel-console.yaml
// when cfgFile is empty. Environment variables win over the file.
func Load(cfgFile string) Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("read .env failed")
	}

	v := viper.New()
	v.SetDefault("APP_ENV", "prod")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("BACKEND_BASE_URL", "http://localhost:3000/api")
	v.SetDefault("BACKEND_TIMEOUT_SECONDS", 20)
	v.SetDefault("BACKEND_RPS", 10)
	v.SetDefault("SESSION_STORE", "file")
	v.SetDefault("CONSOLE_HOME", homeDir())
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("MYSQL_DSN", "root:root@tcp(localhost:3306)/console?parseTime=true&charset=utf8mb4&loc=UTC")
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("METRICS_ADDR", "")
	v.SetDefault("OUTPUT", "table")
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(homeDir())
		v.SetConfigName(".hotel-console")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, missing := err.(viper.ConfigFileNotFoundError); !missing || cfgFile != "" {
			log.Warn().Err(err).Str("file", cfgFile).Msg("config file not loaded")
		}
	} else {
		log.Debug().Str("file", v.ConfigFileUsed()).Msg("config file loaded")
	}

	c := Config{
		AppEnv:         v.GetString("APP_ENV"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		BackendBaseURL: v.GetString("BACKEND_BASE_URL"),
		BackendTimeout: time.Duration(v.GetInt("BACKEND_TIMEOUT_SECONDS")) * time.Second,
		BackendRPS:     v.GetInt("BACKEND_RPS"),
		SessionStore:   strings.ToLower(v.GetString("SESSION_STORE")),
		ConsoleHome:    v.GetString("CONSOLE_HOME"),
		RedisAddr:      v.GetString("REDIS_ADDR"),
		RedisPass:      v.GetString("REDIS_PASSWORD"),
		RedisDB:        v.GetInt("REDIS_DB"),
		MySQLDSN:       v.GetString("MYSQL_DSN"),
		HTTPAddr:       v.GetString("HTTP_ADDR"),
		MetricsAddr:    v.GetString("METRICS_ADDR"),
		Output:         strings.ToLower(v.GetString("OUTPUT")),
	}
	if c.BackendRPS <= 0 {
		log.Warn().Int("rps", c.BackendRPS).Msg("BACKEND_RPS must be positive, using 10")
		c.BackendRPS = 10
	}
	return c
}

func homeDir() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return filepath.Clean(".")
}
