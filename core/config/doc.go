// Package config provides type-safe environment variable loading with
// per-type caching. It uses the caarlos0/env library for parsing and loads
// a .env file once per process on first use.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/streamhub/core/config"
//
//	type OpenSearchConfig struct {
//		Addresses  []string `env:"OPENSEARCH_ADDRESSES,required"`
//		Username   string   `env:"OPENSEARCH_USERNAME"`
//		Password   string   `env:"OPENSEARCH_PASSWORD"`
//		MaxRetries int      `env:"OPENSEARCH_MAX_RETRIES" envDefault:"3"`
//	}
//
//	var cfg OpenSearchConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure during startup:
//	config.MustLoad(&cfg)
//
// Each configuration type is parsed only once per application lifetime;
// later Load calls for the same type return the cached value, so two
// components sharing a config struct always observe identical settings.
package config
