// Package streamhub provides a toolkit for turning single-producer data
// streams into multicast broadcasts with bounded, observable buffering, and
// for draining those streams into storage in size-bounded batches.
//
// # Package Organization
//
// The library is organized into three categories:
//
//   - Core: the broadcast hub, batch ingestor, and ambient plumbing
//   - Utilities: standalone packages with no dependencies on core
//   - Integrations: database sinks and stream transports
//
// # Core Packages
//
//   - github.com/dmitrymomot/streamhub/core/hub:
//     Generic single-producer broadcast hub with per-subscriber overflow
//     policies, keep-alive semantics, and derived (transformed) views.
//
//   - github.com/dmitrymomot/streamhub/core/ingest:
//     Batch ingestion of record slices through pluggable sinks, with
//     backoff retry of admission-queue rejections.
//
//   - github.com/dmitrymomot/streamhub/core/config:
//     Environment-based configuration loading with caching.
//
//   - github.com/dmitrymomot/streamhub/core/logger:
//     slog logger construction and domain attribute helpers.
//
// # Utility Packages
//
//   - github.com/dmitrymomot/streamhub/pkg/async:
//     Future-based asynchronous execution used by the ingestor.
//
// # Integration Packages
//
//   - github.com/dmitrymomot/streamhub/integration/database/pg:
//     Postgres pool setup and a batched-insert sink.
//
//   - github.com/dmitrymomot/streamhub/integration/database/opensearch:
//     OpenSearch client setup and a bulk-indexing sink.
//
//   - github.com/dmitrymomot/streamhub/integration/database/mongo:
//     MongoDB client setup and an InsertMany sink.
//
//   - github.com/dmitrymomot/streamhub/integration/database/redis:
//     Redis client setup with connection verification.
//
//   - github.com/dmitrymomot/streamhub/integration/stream/redis:
//     Bridges between hubs and Redis Pub/Sub channels.
package streamhub
