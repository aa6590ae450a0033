package config

import "time"

const (
	defaultPort             = 8080
	defaultOperationTimeout = 3 * time.Second
)

var defaultStore = StoreConfig{
	Driver:         DriverMongo,
	ConnectRetries: 10,
	ConnectDelay:   time.Second,
}

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "direct_transport",
}

var defaultRateLimit = RateLimitConfig{
	Enabled:    true,
	Backend:    RateLimitMemory,
	Rate:       10,
	Burst:      20,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
	Window:     time.Second,
}

var defaultDebug = DebugConfig{
	Addr: "127.0.0.1:6060",
}

var defaultKafka = KafkaConfig{
	GroupID:     "direct-transport-status",
	StatusTopic: "carrier.status",
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultStore returns the default document store settings.
func DefaultStore() StoreConfig {
	return defaultStore
}

// DefaultDB returns the default postgres settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultRateLimit returns the default rate limit settings.
func DefaultRateLimit() RateLimitConfig {
	return defaultRateLimit
}
