package internal

import "time"

type Config struct {
	Host     string `env:"HOST,default=0.0.0.0"`
	Port     int    `env:"PORT,default=8080"`
	LogLevel string `env:"LOG_LEVEL,default=INFO"`

	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath  string `env:"BLUGE_FILEPATH,required=true"`

	AuthSecret        string        `env:"AUTH_SECRET,required=true"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`

	// One bounded outgoing queue per connection; stale pushes are
	// dropped oldest-first when it overflows.
	ConnectionBufferSize    int `env:"CONNECTION_BUFFER_SIZE,default=16"`
	DropDisconnectThreshold int `env:"DROP_DISCONNECT_THRESHOLD,default=32"`

	MaxSubscriptions int           `env:"MAX_SUBSCRIPTIONS,default=5"`
	IdentifyTimeout  time.Duration `env:"IDENTIFY_TIMEOUT,default=10s"`

	BulkEnabled  bool          `env:"BULK_ENABLED,default=true"`
	BulkInterval time.Duration `env:"BULK_INTERVAL,default=5s"`

	TxRetryCount int `env:"TX_RETRY_COUNT,default=3"`

	TelemetryInterval time.Duration `env:"TELEMETRY_INTERVAL,default=30s"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=5s"`
}
