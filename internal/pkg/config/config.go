package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Auth    AuthConfig
	Cookie  CookieConfig
	Ledger  LedgerConfig
	Outbox  OutboxConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type StorageConfig struct {
	// postgres | memory
	Driver string `envconfig:"STORAGE_DRIVER" default:"postgres"`
}

type DBConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            string        `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER"`
	Password        string        `envconfig:"DB_PASSWORD"`
	DBName          string        `envconfig:"DB_NAME"`
	SSLMode         string        `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone        string        `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns        int32         `envconfig:"DB_MAX_CONNS" default:"20"`
	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type AuthConfig struct {
	// Accounts signing up with one of these emails receive the admin role.
	AdminEmails []string `envconfig:"AUTH_ADMIN_EMAILS"`
	BcryptCost  int      `envconfig:"AUTH_BCRYPT_COST" default:"12"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type LedgerConfig struct {
	// Initial fee rate in parts-per-million, applied only when no settings row exists yet.
	FeePPM         uint32 `envconfig:"LEDGER_FEE_PPM" default:"10000"`
	PlatformWallet string `envconfig:"LEDGER_PLATFORM_WALLET" required:"true"`
	CustodyAccount string `envconfig:"LEDGER_CUSTODY_ACCOUNT" required:"true"`
	// scan | expiry
	PruneStrategy string `envconfig:"LEDGER_PRUNE_STRATEGY" default:"scan"`
	// self | public
	ResolverPolicy string `envconfig:"LEDGER_RESOLVER_POLICY" default:"self"`
	// owner | any_receipt
	IsActivePolicy string `envconfig:"LEDGER_IS_ACTIVE_POLICY" default:"owner"`
}

type OutboxConfig struct {
	AMQPURL      string        `envconfig:"OUTBOX_AMQP_URL"`
	Exchange     string        `envconfig:"OUTBOX_EXCHANGE" default:"ledger.events"`
	PollInterval time.Duration `envconfig:"OUTBOX_POLL_INTERVAL" default:"2s"`
	BatchSize    int           `envconfig:"OUTBOX_BATCH_SIZE" default:"100"`
}

func (c *OutboxConfig) Enabled() bool {
	return c.AMQPURL != ""
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Storage.Driver == "postgres" && (cfg.DB.User == "" || cfg.DB.DBName == "") {
		return Config{}, fmt.Errorf("DB_USER and DB_NAME are required when STORAGE_DRIVER=postgres")
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Storage: StorageConfig{
			Driver: "memory",
		},
		DB: DBConfig{
			Host:            "localhost",
			Port:            "15433", // Test DB port
			User:            "test",
			Password:        "test",
			DBName:          "test_db",
			SSLMode:         "disable",
			TimeZone:        "UTC",
			MaxConns:        10,
			MaxConnLifetime: time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Auth: AuthConfig{
			AdminEmails: []string{"admin@example.com"},
			BcryptCost:  4,
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "Lax",
		},
		Ledger: LedgerConfig{
			FeePPM:         10_000,
			PlatformWallet: "00000000-0000-0000-0000-00000000f00d",
			CustodyAccount: "00000000-0000-0000-0000-0000000c0de0",
			PruneStrategy:  "scan",
			ResolverPolicy: "self",
			IsActivePolicy: "owner",
		},
		Outbox: OutboxConfig{
			Exchange:     "ledger.events",
			PollInterval: 2 * time.Second,
			BatchSize:    100,
		},
	}
}
