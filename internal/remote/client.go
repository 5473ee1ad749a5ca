package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/game-catalog-service/internal/logging"
	"github.com/preston-bernstein/game-catalog-service/internal/metrics"
)

// API is the surface the repositories depend on.
type API interface {
	ListGames(ctx context.Context) ([]GameRecord, error)
	GetGame(ctx context.Context, id int) (GameRecord, error)
	GetGameDetail(ctx context.Context, id int) (DetailPayload, error)
}

// Config controls how the client reaches the catalog backend.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
}

// Client issues single-attempt GET requests against the catalog backend.
type Client struct {
	baseURL    string
	httpClient httpDoer
	logger     *slog.Logger
	metrics    *metrics.Recorder
	now        func() time.Time
}

// NewClient constructs a catalog backend client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		now:        time.Now,
	}
}

// BaseURL returns the normalized backend root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListGames fetches the full catalog and unwraps the response envelope.
func (c *Client) ListGames(ctx context.Context) (records []GameRecord, err error) {
	url := c.baseURL + "/games"
	defer c.track(ctx, OpListGames, url, c.now())(&err)

	body, err := c.get(ctx, OpListGames, url)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &TransportError{Op: opDecode, URL: url, Err: err}
	}
	if !env.Success {
		return nil, &EnvelopeError{Op: OpListGames, URL: url}
	}

	records = make([]GameRecord, 0)
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, &records); err != nil {
			return nil, &TransportError{Op: opDecode, URL: url, Err: err}
		}
	}
	logging.Debug(c.log(ctx), "catalog fetched", logging.FieldURL, url, logging.FieldCount, len(records))
	return records, nil
}

// GetGame fetches one catalog entry. The body is the raw record, not an envelope.
func (c *Client) GetGame(ctx context.Context, id int) (record GameRecord, err error) {
	url := fmt.Sprintf("%s/games/%d", c.baseURL, id)
	defer c.track(ctx, OpGetGame, url, c.now())(&err)

	body, err := c.get(ctx, OpGetGame, url)
	if err != nil {
		return GameRecord{}, err
	}
	if err := json.Unmarshal(body, &record); err != nil {
		return GameRecord{}, &TransportError{Op: opDecode, URL: url, Err: err}
	}
	return record, nil
}

// GetGameDetail fetches the extended record for id and returns the body as-is.
func (c *Client) GetGameDetail(ctx context.Context, id int) (payload DetailPayload, err error) {
	url := fmt.Sprintf("%s/games/%d/detail", c.baseURL, id)
	defer c.track(ctx, OpGetGameDetail, url, c.now())(&err)

	body, err := c.get(ctx, OpGetGameDetail, url)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, &TransportError{Op: opDecode, URL: url, Err: errors.New("body is not valid json")}
	}
	return DetailPayload(body), nil
}

func (c *Client) get(ctx context.Context, op, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &TransportError{Op: op, URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	logger := c.log(ctx)
	logging.Debug(logger, "backend request", logging.FieldOperation, op, logging.FieldURL, url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, URL: url, Err: err}
	}
	defer resp.Body.Close()

	logging.Info(logger, "backend response",
		logging.FieldOperation, op,
		logging.FieldURL, url,
		logging.FieldStatusCode, resp.StatusCode,
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		tErr := &TransportError{Op: op, URL: url, StatusCode: resp.StatusCode}
		if msg := strings.TrimSpace(string(snippet)); msg != "" {
			tErr.Err = errors.New(msg)
		}
		return nil, tErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: opDecode, URL: url, Err: err}
	}
	return body, nil
}

// track records one attempt per public call once its final error is known.
func (c *Client) track(ctx context.Context, op, url string, start time.Time) func(*error) {
	return func(errp *error) {
		err := *errp
		c.metrics.RecordRemoteAttempt(op, c.now().Sub(start), err)
		if err != nil {
			logging.Warn(c.log(ctx), "backend call failed",
				logging.FieldOperation, op,
				logging.FieldURL, url,
				"error", err,
			)
		}
	}
}

func (c *Client) log(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx, c.logger)
}
