// Package redis provides Redis client initialization with URL validation,
// connection retry logic, and health checking.
//
// Connect validates the connection URL, creates a client, and verifies
// connectivity with a ping before returning, so transient startup issues in
// cloud environments do not hand a dead client to callers.
//
// # Usage
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
// The resulting client backs the stream/redis package, which bridges Redis
// Pub/Sub channels with broadcast hubs.
//
// # Error Handling
//
// The package defines stable error types checked with errors.Is():
//
//   - ErrFailedToParseRedisConnString: malformed connection URL
//   - ErrRedisNotReady: all connection attempts exhausted
//   - ErrEmptyConnectionURL: no connection URL provided
//   - ErrHealthcheckFailed: health check ping failed
package redis
