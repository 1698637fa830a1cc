package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	Env  string `envconfig:"APP_ENV" default:"dev"`
	Port string `envconfig:"PORT" default:"8080"`

	Database Database
	Auth     Auth
	Uploads  Uploads
	Broker   Broker
	Metrics  Metrics
	Logs     Logs

	// 0 disables the background sweep; the admin endpoint still works.
	OverdueSweepInterval time.Duration `envconfig:"OVERDUE_SWEEP_INTERVAL" default:"1h"`
	CORSAllowOrigin      string        `envconfig:"CORS_ALLOW_ORIGIN" default:"*"`
}

type Database struct {
	Driver          string        `envconfig:"DB_DRIVER" default:"postgres"` // postgres | sqlite
	PostgresURL     string        `envconfig:"POSTGRES_URL"`
	SQLitePath      string        `envconfig:"SQLITE_PATH" default:"voyago.db"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"30m"`
	AutoMigrate     bool          `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

type Auth struct {
	JWTSecret string        `envconfig:"JWT_SECRET" required:"true"`
	TokenTTL  time.Duration `envconfig:"JWT_TTL" default:"60m"`
}

type Uploads struct {
	Dir          string `envconfig:"UPLOAD_DIR" default:"public/uploads"`
	URLPrefix    string `envconfig:"UPLOAD_URL_PREFIX" default:"/uploads"`
	MaxFileBytes int64  `envconfig:"UPLOAD_MAX_FILE_BYTES" default:"3145728"`
	JPEGQuality  int    `envconfig:"UPLOAD_JPEG_QUALITY" default:"80"`
}

type Broker struct {
	AMQPURL  string `envconfig:"AMQP_URL"`
	Exchange string `envconfig:"AMQP_EXCHANGE" default:"voyago.events"`
}

type Metrics struct {
	Enabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"METRICS_PATH" default:"/metrics"`
}

type Logs struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads an optional .env file and then the process environment.
func Load(envFiles ...string) (App, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	// A missing .env is normal outside local development.
	_ = godotenv.Load(envFiles...)

	var c App
	if err := envconfig.Process("", &c); err != nil {
		return App{}, fmt.Errorf("load config: %w", err)
	}
	if err := c.validate(); err != nil {
		return App{}, err
	}
	return c, nil
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func (c App) validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.PostgresURL == "" {
			return fmt.Errorf("load config: POSTGRES_URL is required when DB_DRIVER=postgres")
		}
	case DriverSQLite:
	default:
		return fmt.Errorf("load config: unsupported DB_DRIVER %q", c.Database.Driver)
	}
	return nil
}

func (c App) IsProduction() bool {
	return c.Env == "prod" || c.Env == "production"
}
