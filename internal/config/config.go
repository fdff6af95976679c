package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

var (
	ErrParameterNotSet = errors.New("config parameter is not set")
)

type Config struct {
	LogLevel         string
	APIAddress       string
	APIToken         string `json:"-"`
	AMQPURL          string
	NotifyExchange   string
	NotifyQueue      string
	NotifyRoutingKey string
}

func NewConfig() (*Config, error) {
	// a local .env is optional
	_ = godotenv.Load()

	logLevel := flag.String("log-level", "info", "log level (default: info)")
	apiAddress := flag.String("a", "", "backend API base address")
	apiToken := flag.String("t", "", "bearer token for the backend API")
	amqpURL := flag.String("b", "", "notification broker address")
	notifyExchange := flag.String(
		"notify-exchange",
		"notifications",
		"broker exchange carrying push events",
	)
	notifyQueue := flag.String(
		"notify-queue",
		"",
		"per-user queue for push events",
	)
	notifyRoutingKey := flag.String(
		"notify-routing-key",
		"user.#",
		"routing key binding for push events",
	)

	flag.Parse()

	finalLogLevel := *logLevel
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		finalLogLevel = env
	}

	finalAPIAddress := *apiAddress
	if env := os.Getenv("API_ADDRESS"); env != "" {
		finalAPIAddress = env
	}

	finalAPIToken := *apiToken
	if env := os.Getenv("API_TOKEN"); env != "" {
		finalAPIToken = env
	}

	finalAMQPURL := *amqpURL
	if env := os.Getenv("AMQP_URL"); env != "" {
		finalAMQPURL = env
	}

	finalNotifyExchange := *notifyExchange
	if env := os.Getenv("NOTIFY_EXCHANGE"); env != "" {
		finalNotifyExchange = env
	}

	finalNotifyQueue := *notifyQueue
	if env := os.Getenv("NOTIFY_QUEUE"); env != "" {
		finalNotifyQueue = env
	}

	finalNotifyRoutingKey := *notifyRoutingKey
	if env := os.Getenv("NOTIFY_ROUTING_KEY"); env != "" {
		finalNotifyRoutingKey = env
	}

	if finalAPIAddress == "" {
		return nil, fmt.Errorf("API address error %w", ErrParameterNotSet)
	}

	if finalAPIToken == "" {
		return nil, fmt.Errorf("API token error %w", ErrParameterNotSet)
	}

	if finalAMQPURL == "" {
		return nil, fmt.Errorf("broker address error %w", ErrParameterNotSet)
	}

	if finalNotifyQueue == "" {
		return nil, fmt.Errorf("notify queue error %w", ErrParameterNotSet)
	}

	return &Config{
		LogLevel:         finalLogLevel,
		APIAddress:       finalAPIAddress,
		APIToken:         finalAPIToken,
		AMQPURL:          finalAMQPURL,
		NotifyExchange:   finalNotifyExchange,
		NotifyQueue:      finalNotifyQueue,
		NotifyRoutingKey: finalNotifyRoutingKey,
	}, nil
}

func (c *Config) String() string {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintln(os.Stdout, err)
		os.Exit(0)
	}
	return string(b)
}
