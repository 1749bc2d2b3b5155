package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-dev-proxy/internal/utils"
)

type httpUpstreamProber struct {
	client *utils.HTTPClient
}

// NewUpstreamProber returns a resty-backed [UpstreamProber] whose probes time
// out after timeout.
func NewUpstreamProber(timeout time.Duration) UpstreamProber {
	return &httpUpstreamProber{client: utils.NewHTTPClient(timeout)}
}

func (p *httpUpstreamProber) Probe(ctx context.Context, origin string) error {
	// Any status code means something is listening.
	_, err := p.client.R().
		SetContext(ctx).
		Head(origin)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUpstreamUnreachable, origin, err)
	}
	return nil
}
