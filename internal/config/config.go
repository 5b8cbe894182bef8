package config

import (
	"context"
	"fmt"
	"net"
	"net/url"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Server       ServerConfig       `env:",prefix=SERVER_"`
	Postgres     PostgresConfig     `env:",prefix=POSTGRES_"`
	Redis        RedisConfig        `env:",prefix=REDIS_"`
	JWT          JWTConfig          `env:",prefix=JWT_"`
	Security     SecurityConfig     `env:",prefix="`
	Verification VerificationConfig `env:",prefix=VERIFICATION_"`
	Storage      StorageConfig      `env:",prefix=STORAGE_"`
	Mail         MailConfig         `env:",prefix=MAIL_"`
	CORS         CORSConfig         `env:",prefix=CORS_"`
	Env          string             `env:"ENV,default=development"`
}

type ServerConfig struct {
	Port           string   `env:"PORT,default=8000"`
	Host           string   `env:"HOST,default=0.0.0.0"`
	ReadTimeout    Duration `env:"READ_TIMEOUT,default=30s"`
	WriteTimeout   Duration `env:"WRITE_TIMEOUT,default=60s"`
	MaxUploadBytes int64    `env:"MAX_UPLOAD_BYTES,default=209715200"`
	CookieSecure   bool     `env:"COOKIE_SECURE,default=true"`
	// Forwarded headers are honored only from these addresses or CIDRs.
	TrustedProxies []string `env:"TRUSTED_PROXIES"`
}

type PostgresConfig struct {
	Host           string `env:"HOST,default=localhost"`
	Port           string `env:"PORT,default=5432"`
	User           string `env:"USER,default=vidverse"`
	Password       string `env:"PASSWORD,default=vidverse_password"`
	DBName         string `env:"DB,default=vidverse"`
	SSLMode        string `env:"SSLMODE,default=disable"`
	MaxConns       int32  `env:"MAX_CONNS,default=10"`
	MigrateOnStart bool   `env:"MIGRATE_ON_START,default=true"`
}

type RedisConfig struct {
	Host     string `env:"HOST,default=localhost"`
	Port     string `env:"PORT,default=6379"`
	Password string `env:"PASSWORD,default="`
	DB       int    `env:"DB,default=0"`
}

type JWTConfig struct {
	AccessSecret       string   `env:"ACCESS_SECRET,required"`
	RefreshSecret      string   `env:"REFRESH_SECRET,required"`
	AccessTokenExpiry  Duration `env:"ACCESS_TOKEN_EXPIRY,default=1d"`
	RefreshTokenExpiry Duration `env:"REFRESH_TOKEN_EXPIRY,default=10d"`
}

type SecurityConfig struct {
	BCryptCost        int      `env:"BCRYPT_COST,default=10"`
	RateLimitRequests int      `env:"RATE_LIMIT_REQUESTS,default=10"`
	RateLimitWindow   Duration `env:"RATE_LIMIT_WINDOW,default=1m"`
}

type VerificationConfig struct {
	CodeTTL Duration `env:"CODE_TTL,default=1h"`
}

type StorageConfig struct {
	Bucket        string `env:"BUCKET,default=vidverse"`
	Region        string `env:"REGION,default=us-east-1"`
	Endpoint      string `env:"ENDPOINT,default="`
	PublicBaseURL string `env:"PUBLIC_BASE_URL,default="`
	AccessKeyID   string `env:"ACCESS_KEY_ID,default="`
	SecretKey     string `env:"SECRET_ACCESS_KEY,default="`
}

type MailConfig struct {
	Driver   string `env:"DRIVER,default=log"`
	Host     string `env:"HOST,default=localhost"`
	Port     int    `env:"PORT,default=587"`
	Username string `env:"USERNAME,default="`
	Password string `env:"PASSWORD,default="`
	From     string `env:"FROM,default=no-reply@vidverse.local"`
}

type CORSConfig struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS,default=http://localhost:5173"`
	AllowedMethods []string `env:"ALLOWED_METHODS,default=GET,POST,PATCH,PUT,DELETE,OPTIONS"`
	AllowedHeaders []string `env:"ALLOWED_HEADERS,default=Content-Type,Authorization"`
}

// DSN returns PostgreSQL connection URL
func (p PostgresConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     net.JoinHostPort(p.Host, p.Port),
		Path:     "/" + p.DBName,
		RawQuery: url.Values{"sslmode": []string{p.SSLMode}}.Encode(),
	}
	return u.String()
}

// Address returns Redis connection address
func (r RedisConfig) Address() string {
	return net.JoinHostPort(r.Host, r.Port)
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var config Config

	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &config,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	if len(c.JWT.AccessSecret) < 32 {
		return fmt.Errorf("JWT_ACCESS_SECRET must be at least 32 characters long")
	}
	if len(c.JWT.RefreshSecret) < 32 {
		return fmt.Errorf("JWT_REFRESH_SECRET must be at least 32 characters long")
	}
	if c.JWT.AccessSecret == c.JWT.RefreshSecret {
		return fmt.Errorf("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must differ")
	}
	switch c.Mail.Driver {
	case "log", "smtp":
	default:
		return fmt.Errorf("MAIL_DRIVER must be one of log, smtp; got %q", c.Mail.Driver)
	}
	return nil
}
