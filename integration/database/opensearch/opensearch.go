package opensearch

import (
	"context"
	"fmt"
	"net/http"

	opensearchgo "github.com/opensearch-project/opensearch-go/v2"
)

// New creates an OpenSearch client and verifies cluster connectivity with an
// immediate ping, failing fast when the cluster is unreachable.
func New(ctx context.Context, cfg Config) (*opensearchgo.Client, error) {
	client, err := opensearchgo.NewClient(opensearchgo.Config{
		Addresses:     cfg.Addresses,
		Username:      cfg.Username,
		Password:      cfg.Password,
		MaxRetries:    cfg.MaxRetries,
		DisableRetry:  cfg.DisableRetry,
		RetryOnStatus: []int{http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout},
	})
	if err != nil {
		return nil, fmt.Errorf("create opensearch client: %w", err)
	}

	res, err := client.Ping(client.Ping.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHealthcheckFailed, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("%w: %s", ErrHealthcheckFailed, res.Status())
	}

	return client, nil
}
