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
// - optional integrations (redis, kafka, sendgrid, otlp) are disabled when left empty
// -----------------------------------------------------------------------------

type Config struct {
	Server       ServerConfig
	DB           DBConfig
	CORS         CORSConfig
	Log          LogConfig
	JWT          JWTConfig
	Mail         MailConfig
	Notification NotificationConfig
	Scheduler    SchedulerConfig
	Redis        RedisConfig
	Kafka        KafkaConfig
	Breaker      BreakerConfig
	Telemetry    TelemetryConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" required:"true"`
	Password    string `envconfig:"DB_PASSWORD" required:"true"`
	DBName      string `envconfig:"DB_NAME" required:"true"`
	SSLMode     string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns    int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`
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

// Driver is one of "sendgrid", "smtp" or "log".
type MailConfig struct {
	Driver         string `envconfig:"MAIL_DRIVER" default:"log"`
	FromEmail      string `envconfig:"MAIL_FROM_EMAIL" default:"no-reply@rentx.local"`
	FromName       string `envconfig:"MAIL_FROM_NAME" default:"RentX"`
	SendGridAPIKey string `envconfig:"SENDGRID_API_KEY"`
	SMTPHost       string `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	SMTPPort       int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser       string `envconfig:"SMTP_USER"`
	SMTPPassword   string `envconfig:"SMTP_PASSWORD"`
}

type NotificationConfig struct {
	EnqueueTimeout   time.Duration `envconfig:"NOTIFICATION_ENQUEUE_TIMEOUT" default:"2s"`
	DispatchSchedule string        `envconfig:"NOTIFICATION_DISPATCH_SCHEDULE" default:"@every 10s"`
	BatchSize        int           `envconfig:"NOTIFICATION_BATCH_SIZE" default:"50"`
	MaxAttempts      int           `envconfig:"NOTIFICATION_MAX_ATTEMPTS" default:"5"`
	SendTimeout      time.Duration `envconfig:"NOTIFICATION_SEND_TIMEOUT" default:"10s"`
	RetryBase        time.Duration `envconfig:"NOTIFICATION_RETRY_BASE" default:"30s"`
}

type SchedulerConfig struct {
	Enabled           bool   `envconfig:"SCHEDULER_ENABLED" default:"true"`
	ReconcileSchedule string `envconfig:"SCHEDULER_RECONCILE_SCHEDULE" default:"@every 1h"`
	ReconcileRepair   bool   `envconfig:"SCHEDULER_RECONCILE_REPAIR" default:"false"`
}

type RedisConfig struct {
	Addr        string        `envconfig:"REDIS_ADDR"`
	Password    string        `envconfig:"REDIS_PASSWORD"`
	DB          int           `envconfig:"REDIS_DB" default:"0"`
	EarningsTTL time.Duration `envconfig:"REDIS_EARNINGS_TTL" default:"5m"`
}

type KafkaConfig struct {
	Brokers []string `envconfig:"KAFKA_BROKERS"`
	Topic   string   `envconfig:"KAFKA_RENT_REQUEST_TOPIC" default:"rent-request-events"`
}

type BreakerConfig struct {
	MaxRequests      uint32        `envconfig:"BREAKER_MAX_REQUESTS" default:"1"`
	Interval         time.Duration `envconfig:"BREAKER_INTERVAL" default:"60s"`
	Timeout          time.Duration `envconfig:"BREAKER_TIMEOUT" default:"30s"`
	FailureThreshold uint32        `envconfig:"BREAKER_FAILURE_THRESHOLD" default:"5"`
}

type TelemetryConfig struct {
	ServiceName  string `envconfig:"OTEL_SERVICE_NAME" default:"rentx-api"`
	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// BuildMigrateURL targets the golang-migrate pgx/v5 driver.
func (c *DBConfig) BuildMigrateURL() string {
	return fmt.Sprintf(
		"pgx5://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-rentx",
			Duration: "1h",
		},
		Mail: MailConfig{
			Driver:    "log",
			FromEmail: "no-reply@rentx.local",
			FromName:  "RentX",
		},
		Notification: NotificationConfig{
			EnqueueTimeout:   time.Second,
			DispatchSchedule: "@every 1s",
			BatchSize:        10,
			MaxAttempts:      3,
			SendTimeout:      time.Second,
			RetryBase:        time.Second,
		},
		Scheduler: SchedulerConfig{
			Enabled: false,
		},
		Kafka: KafkaConfig{
			Topic: "rent-request-events",
		},
		Breaker: BreakerConfig{
			MaxRequests:      1,
			Interval:         time.Minute,
			Timeout:          time.Second,
			FailureThreshold: 3,
		},
		Telemetry: TelemetryConfig{
			ServiceName: "rentx-api-test",
		},
	}
}
