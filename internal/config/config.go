/**
* Name: 			config.go
* Description: 		환경 변수 기반 설정 로드
* Workflow: 		.env 로드(선택), 환경 변수 읽기, 기본값 적용
 */

package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// API_BASE_URL 미설정 시 사용하는 원격 API origin
const DefaultAPIBaseURL = "https://dayanch.pythonanywhere.com"

type Config struct {
	Port             string
	DBPath           string
	MediaRoot        string
	MediaURL         string
	APIBaseURL       string
	GeminiAPIKey     string
	GeminiModel      string
	JWTSecret        string
	InviteCode       string
	AllowedOrigins   []string
	LogFile          string
	LogLevel         string
	ChatRatePerMin   int
	ChatHistoryLimit int
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:             getEnv("PORT", "8080"),
		DBPath:           getEnv("DB_PATH", "./portfolio.db"),
		MediaRoot:        getEnv("MEDIA_ROOT", "./data/media"),
		MediaURL:         getEnv("MEDIA_URL", "/media/"),
		APIBaseURL:       strings.TrimRight(getEnv("API_BASE_URL", DefaultAPIBaseURL), "/"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		JWTSecret:        os.Getenv("JWT_SECRET_KEY"),
		InviteCode:       os.Getenv("SIGNUP_INVITE_CODE"),
		AllowedOrigins:   getEnvList("ALLOWED_ORIGINS"),
		LogFile:          getEnv("LOG_FILE", "./data/logs/portfolio.log"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		ChatRatePerMin:   getEnvInt("CHAT_RATE_PER_MINUTE", 20),
		ChatHistoryLimit: getEnvInt("CHAT_HISTORY_LIMIT", 10),
	}
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

// 쉼표 구분 목록, 비어 있으면 nil (모든 origin 허용)
func getEnvList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
