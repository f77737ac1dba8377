package main

import (
	"crypto/rand"
	"encoding/base64"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Renal37/laundry-service/internal/services"
)

type Config struct {
	endpoint         string
	dsn              string
	logLevel         string
	env              string
	authSecretKey    string
	rateTablePath    string
	notifyWebhookURL string
	notifyTimeout    time.Duration
	redisAddr        string
	statsCacheTTL    time.Duration
	jobWorkers       int
	jobQueueCapacity int

	// generatedSecret is set when no AUTH_SECRET_KEY was given in production.
	generatedSecret bool
}

func generateRandomString(length int) string {
	b := make([]byte, length)
	_, err := rand.Read(b)
	if err != nil {
		panic(err)
	}
	return base64.StdEncoding.EncodeToString(b)
}

func loadDotEnv() {
	_ = godotenv.Load()
}

func (c *Config) bindDatabaseFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&c.dsn, "dsn", "d", "", "data source name for database connection")
}

func (c *Config) bindServeFlags(cmd *cobra.Command) {
	c.bindDatabaseFlags(cmd)
	cmd.Flags().StringVarP(&c.endpoint, "address", "a", "localhost:8090", "address and port to run server")
	cmd.Flags().StringVarP(&c.rateTablePath, "rates", "r", "", "YAML rate table, built-in ladder when empty")
	cmd.Flags().StringVar(&c.notifyWebhookURL, "notify-webhook", "", "webhook receiving order notifications, log only when empty")
	cmd.Flags().DurationVar(&c.notifyTimeout, "notify-timeout", services.DefaultNotifyTimeout, "timeout of one notification attempt")
	cmd.Flags().StringVar(&c.redisAddr, "redis", "", "redis address for the stats cache, no cache when empty")
	cmd.Flags().DurationVar(&c.statsCacheTTL, "stats-ttl", services.DefaultStatsCacheTTL, "how long admin stats are cached")
	cmd.Flags().IntVar(&c.jobWorkers, "workers", 2, "background job workers")
	cmd.Flags().IntVar(&c.jobQueueCapacity, "queue-capacity", 100, "background job queue capacity")
}

// applyEnv lets environment variables override flags and fills the defaults
// that depend on the environment.
func (c *Config) applyEnv() {
	if address := os.Getenv("RUN_ADDRESS"); address != "" {
		c.endpoint = address
	}

	if d := os.Getenv("DATABASE_URI"); d != "" {
		c.dsn = d
	}

	if l := os.Getenv("LOG_LEVEL"); l != "" {
		c.logLevel = l
	} else {
		c.logLevel = "error"
	}

	if e := os.Getenv("ENV"); e != "" {
		c.env = e
	} else {
		c.env = "production"
	}

	if secret := os.Getenv("AUTH_SECRET_KEY"); secret != "" {
		c.authSecretKey = secret
	} else if c.env == "production" {
		c.authSecretKey = generateRandomString(10)
		c.generatedSecret = true
	} else {
		c.authSecretKey = "development-key"
	}

	if path := os.Getenv("RATE_TABLE_PATH"); path != "" {
		c.rateTablePath = path
	}

	if url := os.Getenv("NOTIFY_WEBHOOK_URL"); url != "" {
		c.notifyWebhookURL = url
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		c.redisAddr = addr
	}

	c.notifyTimeout = envDuration("NOTIFY_TIMEOUT", c.notifyTimeout)
	c.statsCacheTTL = envDuration("STATS_CACHE_TTL", c.statsCacheTTL)
	c.jobWorkers = envInt("JOB_WORKERS", c.jobWorkers)
	c.jobQueueCapacity = envInt("JOB_QUEUE_CAPACITY", c.jobQueueCapacity)
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
