package shared

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv         string
	HTTPAddr       string
	MetricsAddr    string
	RequestTimeout time.Duration

	ContentBase    string
	ContentRPS     int
	ContentTimeout time.Duration

	ChatbotURL     string
	ChatbotTimeout time.Duration
	ChatMaxReplies int
	ChatLimitDelay time.Duration
	ChatSessionTTL time.Duration

	RedisAddr string
	RedisDB   int
	RedisPass string
	CacheTTL  time.Duration

	MySQLDSN    string
	WarmWorkers int
	WarmPages   int

	MapGeoJSONPath   string
	RecaptchaSiteKey string
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		HTTPAddr:       env("HTTP_ADDR", ":8080"),
		MetricsAddr:    env("METRICS_ADDR", ""),
		RequestTimeout: time.Duration(atoi("REQUEST_TIMEOUT_SECONDS", 45)) * time.Second,

		ContentBase:    env("CONTENT_API_BASE_URL", "https://backend.bidukbiduk.com/api"),
		ContentRPS:     atoi("CONTENT_RPS", 10),
		ContentTimeout: time.Duration(atoi("CONTENT_TIMEOUT_SECONDS", 10)) * time.Second,

		ChatbotURL:     env("CHATBOT_URL", "https://73e1b7527fb2.ngrok-free.app/api/chatbot/message"),
		ChatbotTimeout: time.Duration(atoi("CHATBOT_TIMEOUT_SECONDS", 30)) * time.Second,
		ChatMaxReplies: atoi("CHAT_MAX_REPLIES", 3),
		ChatLimitDelay: time.Duration(atoi("CHAT_LIMIT_DELAY_MS", 1000)) * time.Millisecond,
		ChatSessionTTL: time.Duration(atoi("CHAT_SESSION_TTL_MINUTES", 60)) * time.Minute,

		RedisAddr: env("REDIS_ADDR", ""),
		RedisPass: env("REDIS_PASSWORD", ""),
		RedisDB:   atoi("REDIS_DB", 0),
		CacheTTL:  time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,

		MySQLDSN:    env("MYSQL_DSN", ""),
		WarmWorkers: atoi("WARM_WORKERS", 4),
		WarmPages:   atoi("WARM_PAGES", 2),

		MapGeoJSONPath:   env("MAP_GEOJSON_PATH", "public/biduk_biduk.json"),
		RecaptchaSiteKey: env("RECAPTCHA_SITE_KEY", ""),
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
