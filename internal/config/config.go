package config

import (
	"net"
	"time"
)

type Config struct {
	App      AppConfig      `env-prefix:"APP_"`
	HTTP     HTTPConfig     `env-prefix:"HTTP_"`
	GRPC     GRPCConfig     `env-prefix:"GRPC_"`
	Database DatabaseConfig `env-prefix:"DB_"`
	Auth     AuthConfig     `env-prefix:"AUTH_"`
	Health   HealthConfig   `env-prefix:"HEALTH_"`
}

type AppConfig struct {
	LogLevel          string `env:"LOG_LEVEL" env-default:"info"`
	Pretty            bool   `env:"PRETTY" env-default:"false"`
	LogFile           string `env:"LOG_FILE"`
	LogFileMaxSizeMB  int    `env:"LOG_FILE_MAX_SIZE_MB" env-default:"100"`
	LogFileMaxBackups int    `env:"LOG_FILE_MAX_BACKUPS" env-default:"3"`
}

type HTTPConfig struct {
	Addr            string        `env:"ADDR" env-default:":5247"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"3s"`
}

type GRPCConfig struct {
	Addr             string        `env:"ADDR" env-default:":50051"`
	KeepaliveTime    time.Duration `env:"KEEPALIVE_TIME" env-default:"60s"`
	KeepaliveTimeout time.Duration `env:"KEEPALIVE_TIMEOUT" env-default:"30s"`
}

type DatabaseConfig struct {
	Port          string `env:"PORT" env-default:"5432"`
	Host          string `env:"HOST" env-default:"localhost"`
	Name          string `env:"NAME" env-default:"postgres"`
	User          string `env:"USER" env-default:"user"`
	Password      string `env:"PASSWORD"`
	RetryAttempts uint   `env:"RETRY_ATTEMPTS" env-default:"3"`
	MaxConns      int32  `env:"MAX_CONNS" env-default:"10"`
	Migrate       bool   `env:"MIGRATE" env-default:"true"`
}

func (c DatabaseConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

type AuthConfig struct {
	MockUserID int64 `env:"MOCK_USER_ID" env-default:"1"`
}

type HealthConfig struct {
	Interval time.Duration `env:"INTERVAL" env-default:"10s"`
}
