package spacex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/machinebox/graphql"
	"go.uber.org/zap"

	"github.com/3-lines-studio/launchboard/internal/types"
)

const DefaultEndpoint = "https://api.spacex.land/graphql/"

// LaunchLimit bounds the launchesPast query. Truncation is the API's job;
// nothing downstream caps the list again.
const LaunchLimit = 10

const LaunchQuery = `query GetLaunches($limit: Int) {
  launchesPast(limit: $limit) {
    id
    mission_name
    launch_date_local
    launch_site {
      site_name_long
    }
    links {
      article_link
      video_link
      mission_patch
    }
    rocket {
      rocket_name
    }
  }
}`

var (
	ErrMissingEndpoint = errors.New("launches endpoint is required")
	ErrQueryFailed     = errors.New("launches query failed")
	ErrNoData          = errors.New("response carried no data")
)

// launchesResponse records whether the response had a "data" object at all;
// a null or absent data member leaves received false.
type launchesResponse struct {
	LaunchesPast []types.Launch
	received     bool
}

func (r *launchesResponse) UnmarshalJSON(data []byte) error {
	var payload struct {
		LaunchesPast []types.Launch `json:"launchesPast"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}
	r.LaunchesPast = payload.LaunchesPast
	r.received = true
	return nil
}

// statusTransport fails any response outside 2xx before the body reaches
// the GraphQL decoder.
type statusTransport struct {
	base http.RoundTripper
}

func (t *statusTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return resp, nil
}

type Executor struct {
	endpoint   string
	logger     *zap.Logger
	httpClient *http.Client
	userAgent  string
}

type Option func(*Executor)

// WithHTTPClient makes every fetch reuse hc instead of building its own
// transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(e *Executor) {
		e.httpClient = hc
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(e *Executor) {
		e.logger = logger
	}
}

func WithUserAgent(ua string) Option {
	return func(e *Executor) {
		e.userAgent = ua
	}
}

func NewExecutor(endpoint string, opts ...Option) (*Executor, error) {
	if endpoint == "" {
		return nil, ErrMissingEndpoint
	}

	e := &Executor{
		endpoint:  endpoint,
		logger:    zap.NewNop(),
		userAgent: "launchboard",
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}

	return e, nil
}

func (e *Executor) Endpoint() string {
	return e.endpoint
}

// FetchLaunches runs the launches query once. Each call gets its own client
// and, unless one was injected, its own transport that is torn down before
// returning.
func (e *Executor) FetchLaunches(ctx context.Context) ([]types.Launch, error) {
	var hc http.Client
	if e.httpClient != nil {
		hc = *e.httpClient
	} else {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		defer transport.CloseIdleConnections()
		hc.Transport = transport
	}
	base := hc.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	hc.Transport = &statusTransport{base: base}

	client := graphql.NewClient(e.endpoint, graphql.WithHTTPClient(&hc))
	client.Log = func(s string) {
		e.logger.Debug(s, zap.String("component", "graphql"))
	}

	req := graphql.NewRequest(LaunchQuery)
	req.Var("limit", LaunchLimit)
	req.Header.Set("User-Agent", e.userAgent)

	start := time.Now()
	var resp launchesResponse
	if err := client.Run(ctx, req, &resp); err != nil {
		e.logger.Error("launches query failed",
			zap.String("endpoint", e.endpoint),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}
	if !resp.received {
		e.logger.Error("launches query returned no data", zap.String("endpoint", e.endpoint))
		return nil, fmt.Errorf("%w: %w", ErrQueryFailed, ErrNoData)
	}

	launches := resp.LaunchesPast
	if launches == nil {
		launches = []types.Launch{}
	}

	e.logger.Info("fetched launches",
		zap.String("endpoint", e.endpoint),
		zap.Int("count", len(launches)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return launches, nil
}
