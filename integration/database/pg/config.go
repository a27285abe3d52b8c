package pg

import "time"

// Config holds Postgres connection settings, mapped from the environment.
type Config struct {
	ConnectionString   string        `env:"PG_CONN_URL,required"`
	MaxConns           int32         `env:"PG_MAX_CONNS" envDefault:"10"`
	MinConns           int32         `env:"PG_MIN_CONNS" envDefault:"0"`
	MaxConnLifetime    time.Duration `env:"PG_MAX_CONN_LIFETIME" envDefault:"1h"`
	MaxConnIdleTime    time.Duration `env:"PG_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	RetryAttempts      int           `env:"PG_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval      time.Duration `env:"PG_RETRY_INTERVAL" envDefault:"5s"`
	HealthcheckTimeout time.Duration `env:"PG_HEALTHCHECK_TIMEOUT" envDefault:"5s"`
}
