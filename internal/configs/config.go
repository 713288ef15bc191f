package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/snopkov906-sudo/krisha-parser/internal/constants"
)

// TelegramConfig хранит учётные данные бота
type TelegramConfig struct {
	BotToken string
	ChatID   int64
}

// SearchConfig хранит параметры поиска и фильтрации объявлений
type SearchConfig struct {
	MapURL      string
	MaxPrice    int
	TargetRooms int
	// MaxPages ограничивает число страниц выдачи; 0 — без ограничения
	MaxPages int
}

// ScraperConfig хранит сетевые параметры обхода выдачи
type ScraperConfig struct {
	RequestTimeout         time.Duration
	RequestRetries         int
	RetryBackoff           time.Duration
	PageDelay              time.Duration
	MaxConsecutiveFailures int
}

type StdoutLogConfig struct {
	Level string
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string
}

// AppConfig хранит всю конфигурацию приложения
type AppConfig struct {
	Telegram     TelegramConfig
	Search       SearchConfig
	Scraper      ScraperConfig
	SeenIDsFile  string
	AppName      string
	StdoutLogger StdoutLogConfig
	FluentBit    FluentBitConfig
}

// LoadConfig загружает конфигурацию из переменных окружения.
// Файл .env подхватывается, если он есть; его отсутствие не является ошибкой.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Printf("Info: Could not load .env file (path: %v): %v.\n", envPath, err)
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "krisha-parser")

	cfg.Telegram.BotToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	if cfg.Telegram.BotToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable is required")
	}

	chatID := os.Getenv("TELEGRAM_CHAT_ID")
	if chatID == "" {
		return nil, fmt.Errorf("TELEGRAM_CHAT_ID environment variable is required")
	}
	cfg.Telegram.ChatID, err = strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("TELEGRAM_CHAT_ID (value: %s) is not a valid chat id: %w", chatID, err)
	}

	cfg.Search.MapURL = getEnvAsString("KRISHA_MAP_URL", constants.DefaultMapURL)
	cfg.Search.MaxPrice = getEnvAsInt("MAX_PRICE", constants.DefaultMaxPrice)
	cfg.Search.TargetRooms = getEnvAsInt("TARGET_ROOMS", constants.DefaultTargetRooms)
	cfg.Search.MaxPages = getEnvAsInt("MAX_PAGES", 0)

	cfg.Scraper.RequestTimeout = getEnvAsDuration("REQUEST_TIMEOUT", constants.DefaultRequestTimeout)
	cfg.Scraper.RequestRetries = getEnvAsInt("REQUEST_RETRIES", constants.DefaultRequestRetries)
	cfg.Scraper.RetryBackoff = getEnvAsDuration("RETRY_BACKOFF", constants.DefaultRetryBackoff)
	cfg.Scraper.PageDelay = getEnvAsDuration("PAGE_DELAY", constants.DefaultPageDelay)
	cfg.Scraper.MaxConsecutiveFailures = getEnvAsInt("MAX_CONSECUTIVE_FAILURES", constants.DefaultMaxConsecutiveFailures)

	cfg.SeenIDsFile = getEnvAsString("SEEN_IDS_FILE", constants.DefaultSeenIDsFile)

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}

		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	return cfg, nil
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt читает переменную окружения как int или возвращает значение по умолчанию.
// Логирует ошибку, если переменная есть, но не может быть преобразована в int
func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

// getEnvAsBool читает переменную окружения как bool или возвращает значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}

// getEnvAsDuration читает переменную окружения в формате time.ParseDuration ("30s", "700ms")
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valDur, err := time.ParseDuration(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as duration: %v. Using default value: %s\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valDur
}
