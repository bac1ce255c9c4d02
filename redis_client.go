package lexiset

import (
	"crypto/tls"
	"fmt"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConnOptions holds the settings used to connect to the Redis server
// backing BitSetRedis and RedisWordAuthority.
type RedisConnOptions struct {
	DB                int
	Network           string
	Address           string
	Username          string
	Password          string
	ConnectionTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	PoolSize          int
	TLSConfig         *tls.Config
}

// NewRedisClient creates a new redis client from _options_
func NewRedisClient(options RedisConnOptions) *redis.Client {
	return redis.NewClient(&redis.Options{
		DB:           options.DB,
		Network:      options.Network,
		Addr:         options.Address,
		Username:     options.Username,
		Password:     options.Password,
		DialTimeout:  options.ConnectionTimeout,
		ReadTimeout:  options.ReadTimeout,
		WriteTimeout: options.WriteTimeout,
		PoolSize:     options.PoolSize,
		TLSConfig:    options.TLSConfig,
	})
}

// NewRedisClientFromURI parses _uri_ and creates a redis client from it
func NewRedisClientFromURI(uri string) (*redis.Client, error) {
	options, err := ParseRedisURI(uri)
	if err != nil {
		return nil, err
	}
	return NewRedisClient(*options), nil
}

// ParseRedisURI parses a redis:// or rediss:// uri into RedisConnOptions
func ParseRedisURI(uri string) (*RedisConnOptions, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("lexiset: could not parse redis uri: %w", err)
	}
	if u.Scheme != "redis" && u.Scheme != "rediss" {
		return nil, fmt.Errorf("lexiset: unsupported uri scheme %q", u.Scheme)
	}
	options, err := redis.ParseURL(uri)
	if err != nil {
		return nil, fmt.Errorf("lexiset: error while parsing redis uri: %w", err)
	}
	return makeConnOptions(options), nil
}

func makeConnOptions(options *redis.Options) *RedisConnOptions {
	return &RedisConnOptions{
		DB:                options.DB,
		Network:           options.Network,
		Address:           options.Addr,
		Username:          options.Username,
		Password:          options.Password,
		ConnectionTimeout: options.DialTimeout,
		ReadTimeout:       options.ReadTimeout,
		WriteTimeout:      options.WriteTimeout,
		PoolSize:          options.PoolSize,
		TLSConfig:         options.TLSConfig,
	}
}
