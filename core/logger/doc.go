// Package logger builds slog loggers with the conventions used across this
// module and provides nil-safe attribute helpers for its domain terms
// (subscriptions, destinations, batches).
//
//	log := logger.New(
//	    logger.WithApp("feedrelay"),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithJSON(),
//	)
//
//	log.Info("batch acknowledged",
//	    logger.Destination("events"),
//	    logger.Batch(3, 100),
//	    logger.Elapsed(start),
//	)
//
// Helpers return an empty slog.Attr for nil or zero values, which slog
// renders as nothing, so callers never need nil checks.
package logger
