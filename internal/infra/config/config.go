package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates application configuration values loaded from environment variables.
type Config struct {
	Env                string
	HTTPAddr           string
	VillaFixtures      string
	KafkaBrokers       []string
	KafkaTopicPrefix   string
	OutboxPollInterval time.Duration
	RetryBackoff       []time.Duration

	MinShortStayNights    int
	MaxShortStayNights    int
	WeeklyDiscountPercent int
	DiscountMinWeeks      int
}

// Load parses configuration from the current environment. Kafka is optional:
// without KAFKA_BROKERS the service runs with events kept in memory only.
func Load() (Config, error) {
	cfg := Config{
		Env:              getEnv("APP_ENV", "dev"),
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		VillaFixtures:    getEnv("VILLA_FIXTURES", ""),
		KafkaTopicPrefix: getEnv("KAFKA_TOPIC_PREFIX", ""),
	}
	brokers := getEnv("KAFKA_BROKERS", "")
	if brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	poll, err := parseDurationEnv("OUTBOX_POLL_INTERVAL", 500*time.Millisecond)
	if err != nil {
		return Config{}, err
	}
	cfg.OutboxPollInterval = poll

	retryStr := getEnv("RETRY_BACKOFF", "1s,5s,30s")
	for _, raw := range strings.Split(retryStr, ",") {
		val := strings.TrimSpace(raw)
		if val == "" {
			continue
		}
		d, err := time.ParseDuration(val)
		if err != nil {
			return Config{}, fmt.Errorf("invalid RETRY_BACKOFF component %q: %w", raw, err)
		}
		cfg.RetryBackoff = append(cfg.RetryBackoff, d)
	}

	minNights, err := parseIntEnv("MIN_SHORT_STAY", 3)
	if err != nil {
		return Config{}, err
	}
	maxNights, err := parseIntEnv("MAX_SHORT_STAY", 21)
	if err != nil {
		return Config{}, err
	}
	discountPct, err := parseIntEnv("WEEKLY_DISCOUNT_PERCENT", 15)
	if err != nil {
		return Config{}, err
	}
	discountWeeks, err := parseIntEnv("DISCOUNT_MIN_WEEKS", 2)
	if err != nil {
		return Config{}, err
	}
	cfg.MinShortStayNights = minNights
	cfg.MaxShortStayNights = maxNights
	cfg.WeeklyDiscountPercent = discountPct
	cfg.DiscountMinWeeks = discountWeeks

	if cfg.MinShortStayNights < 1 {
		return Config{}, fmt.Errorf("MIN_SHORT_STAY must be at least 1")
	}
	if cfg.MaxShortStayNights > 0 && cfg.MaxShortStayNights < cfg.MinShortStayNights {
		return Config{}, fmt.Errorf("MAX_SHORT_STAY must be zero or >= MIN_SHORT_STAY")
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s duration: %w", key, err)
	}
	return d, nil
}

func parseIntEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s integer: %q", key, raw)
	}
	return v, nil
}
