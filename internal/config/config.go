package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"   validate:"required"`
	Logger   LoggerConfig   `yaml:"logger"   validate:"required"`
	Gin      GinConfig      `yaml:"gin"      validate:"required"`
	Backend  BackendConfig  `yaml:"backend"  validate:"required"`
	Session  SessionConfig  `yaml:"session"  validate:"required"`
	Portal   PortalConfig   `yaml:"portal"`
	Telegram TelegramConfig `yaml:"telegram"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"30s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog" validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info" validate:"required,oneof=debug info warn error"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

// BackendConfig указывает на три сервиса платформы и ограничивает
// каждый вид запроса. WriteTimeout собственного сервера должен быть
// больше самого длинного бюджета, иначе создание брони оборвется.
type BackendConfig struct {
	AuthURL     string `yaml:"auth_url"     env:"BACKEND_AUTH_URL"     env-default:"http://localhost:8001" validate:"required,url"`
	ToursURL    string `yaml:"tours_url"    env:"BACKEND_TOURS_URL"    env-default:"http://localhost:8002" validate:"required,url"`
	BookingsURL string `yaml:"bookings_url" env:"BACKEND_BOOKINGS_URL" env-default:"http://localhost:8003" validate:"required,url"`

	IdentityTimeout      time.Duration `yaml:"identity_timeout"       env:"BACKEND_IDENTITY_TIMEOUT"       env-default:"5s"  validate:"gt=0"`
	ListTimeout          time.Duration `yaml:"list_timeout"           env:"BACKEND_LIST_TIMEOUT"           env-default:"10s" validate:"gt=0"`
	BookingCreateTimeout time.Duration `yaml:"booking_create_timeout" env:"BACKEND_BOOKING_CREATE_TIMEOUT" env-default:"15s" validate:"gt=0"`
	MutationTimeout      time.Duration `yaml:"mutation_timeout"       env:"BACKEND_MUTATION_TIMEOUT"       env-default:"10s" validate:"gt=0"`
}

type SessionConfig struct {
	// TokenFile of "" resolves to <user config dir>/tourportal/token.json.
	TokenFile          string        `yaml:"token_file"          env:"SESSION_TOKEN_FILE"`
	AdminAllowlist     []string      `yaml:"admin_allowlist"     env:"SESSION_ADMIN_ALLOWLIST"     env-default:"admin,manager,root,boss"`
	RevalidateInterval time.Duration `yaml:"revalidate_interval" env:"SESSION_REVALIDATE_INTERVAL" env-default:"5m" validate:"gt=0"`
}

type PortalConfig struct {
	DebugTools bool `yaml:"debug_tools" env:"PORTAL_DEBUG_TOOLS" env-default:"false"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
	ChatID   int64  `yaml:"chat_id"   env:"TELEGRAM_CHAT_ID"   env-default:"0"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
