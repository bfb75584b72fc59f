package pokeapi

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultTimeout = 15 * time.Second
	maxBodySize    = 16 * 1024 * 1024
)

// Doer is satisfied by *http.Client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	baseUrl string
	timeout time.Duration
	client  Doer
	sugar   *zap.SugaredLogger
}

type Option func(*Client)

func WithBaseUrl(baseUrl string) Option {
	return func(c *Client) {
		c.baseUrl = baseUrl
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

func WithDoer(doer Doer) Option {
	return func(c *Client) {
		c.client = doer
	}
}

func NewClient(sugar *zap.SugaredLogger, opts ...Option) *Client {
	c := &Client{
		baseUrl: DefaultBaseUrl,
		timeout: DefaultTimeout,
		client:  &http.Client{},
		sugar:   sugar,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// fetch reads the body only for successful responses; everything else maps to
// NotFound whatever the body holds.
func (c *Client) fetch(req *http.Request) (int, []byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	if !isSuccess(resp.StatusCode) {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return resp.StatusCode, nil, nil
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}

// Query runs one lookup: at most one request, bounded by the client timeout.
// Every failure is a *QueryError.
func (c *Client) Query(ctx context.Context, mode LookupMode, rawInput string) (ModeResult, error) {
	query := NewQuery(mode, rawInput)
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := BuildRequest(ctx, c.baseUrl, query)
	if err != nil {
		return nil, err
	}
	c.sugar.Infof("Fetching %s for %q from %s", mode, query.RawInput, req.URL)
	status, body, err := c.fetch(req)
	if err != nil {
		c.sugar.Errorf("Request to %s failed: %s", req.URL, err)
		return nil, transportFailure(mode, err)
	}
	result, err := Transform(query, status, body)
	if err != nil {
		c.sugar.Infof("Lookup %s %q failed: %s", mode, query.RawInput, err)
		return nil, err
	}
	return result, nil
}

type Outcome struct {
	Id     uuid.UUID
	Query  Query
	Result ModeResult
	Err    error
}

// Submit runs Query in the background. The returned channel receives exactly
// one Outcome and is then closed.
func (c *Client) Submit(ctx context.Context, mode LookupMode, rawInput string) <-chan Outcome {
	out := make(chan Outcome, 1)
	id := uuid.New()
	go func() {
		defer close(out)
		result, err := c.Query(ctx, mode, rawInput)
		out <- Outcome{Id: id, Query: NewQuery(mode, rawInput), Result: result, Err: err}
	}()
	return out
}

// QueryAll runs every query concurrently and returns outcomes in input order.
// A failed query does not stop the others.
func (c *Client) QueryAll(ctx context.Context, queries []Query) []Outcome {
	outcomes := make([]Outcome, len(queries))
	var waitGroup sync.WaitGroup
	for i, query := range queries {
		i, query := i, query
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			result, err := c.Query(ctx, query.Mode, query.RawInput)
			outcomes[i] = Outcome{
				Id:     uuid.New(),
				Query:  NewQuery(query.Mode, query.RawInput),
				Result: result,
				Err:    err,
			}
		}()
	}
	waitGroup.Wait()
	return outcomes
}
