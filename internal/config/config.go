package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	AppName          string
	AppVersion       string
	Environment      string
	HTTPAddr         string
	AuthCookieSecure bool

	DBType            string
	DBHost            string
	DBPort            string
	DBName            string
	DBUser            string
	DBPassword        string
	DBSSLMode         string
	DBMaxIdleConn     int
	DBMaxOpenConn     int
	DBConnMaxLifetime int

	Renderer RendererConfig

	Company CompanyConfig

	Email EmailConfig

	AssetBaseURL string
}

// EmailConfig configures outgoing document delivery. An empty SMTPHost
// selects the no-op provider.
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
}

// CompanyConfig identifies the training body printed on every document.
type CompanyConfig struct {
	Name    string
	Address string
	Email   string
	Phone   string
	SIRET   string
	LogoURL string
}

// RendererConfig configures the headless renderer adapter.
type RendererConfig struct {
	// BinPath points at a bundled browser binary. Takes priority over
	// path probing; required in serverless deployments.
	BinPath        string
	TimeoutSeconds int
	Workers        int
	NoSandbox      bool
}

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvServerless  = "serverless"
)

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	environment := normalizeEnvironment(getenv("ENVIRONMENT", EnvDevelopment))
	authCookieSecure := environment != EnvDevelopment
	if !authCookieSecure {
		authCookieSecure = getenvBool("AUTH_COOKIE_SECURE", false)
	}

	return Config{
		AppName:          getenv("APP_SERVICE", "formadesk"),
		AppVersion:       getenv("APP_VERSION", "0.1.0"),
		Environment:      environment,
		HTTPAddr:         getenv("HTTP_ADDR", ":8080"),
		AuthCookieSecure: authCookieSecure,

		DBType:            getenv("DATABASE_TYPE", "postgres"),
		DBHost:            getenv("DATABASE_HOST", "localhost"),
		DBPort:            getenv("DATABASE_PORT", "5432"),
		DBName:            getenv("DATABASE_NAME", "formadesk"),
		DBUser:            getenv("DATABASE_USER", "postgres"),
		DBPassword:        getenv("DATABASE_PASSWORD", ""),
		DBSSLMode:         getenv("DATABASE_SSLMODE", "disable"),
		DBMaxIdleConn:     getenvInt("DATABASE_MAX_IDLE_CONN", 2),
		DBMaxOpenConn:     getenvInt("DATABASE_MAX_OPEN_CONN", 10),
		DBConnMaxLifetime: getenvInt("DATABASE_CONN_MAX_LIFETIME", 0),

		Renderer: RendererConfig{
			BinPath:        strings.TrimSpace(getenv("RENDERER_BIN", "")),
			TimeoutSeconds: getenvInt("RENDERER_TIMEOUT", 30),
			Workers:        getenvInt("RENDERER_WORKERS", 0),
			NoSandbox:      getenvBool("RENDERER_NO_SANDBOX", environment != EnvDevelopment),
		},

		Company: CompanyConfig{
			Name:    getenv("COMPANY_NAME", "CI.DES"),
			Address: getenv("COMPANY_ADDRESS", ""),
			Email:   getenv("COMPANY_EMAIL", ""),
			Phone:   getenv("COMPANY_PHONE", ""),
			SIRET:   getenv("COMPANY_SIRET", ""),
			LogoURL: getenv("COMPANY_LOGO_URL", ""),
		},

		Email: EmailConfig{
			SMTPHost:     getenv("SMTP_HOST", ""),
			SMTPPort:     getenvInt("SMTP_PORT", 587),
			SMTPUsername: getenv("SMTP_USERNAME", ""),
			SMTPPassword: getenv("SMTP_PASSWORD", ""),
			SMTPFrom:     getenv("SMTP_FROM", "noreply@cides.fr"),
		},

		AssetBaseURL: strings.TrimRight(getenv("ASSET_BASE_URL", ""), "/"),
	}
}

// IsServerless reports whether the service runs in a constrained hosting
// environment where only the bundled renderer binary is usable.
func (c Config) IsServerless() bool {
	return c.Environment == EnvServerless
}

func normalizeEnvironment(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch value {
	case EnvProduction:
		return EnvProduction
	case EnvServerless:
		return EnvServerless
	default:
		return EnvDevelopment
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if value == "" {
		return def
	}
	switch value {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}
