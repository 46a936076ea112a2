package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-doc-sync/internal/config"
	"github.com/MKhiriev/go-doc-sync/internal/logger"
	"github.com/MKhiriev/go-doc-sync/internal/utils"
	"github.com/MKhiriev/go-doc-sync/models"
	"github.com/go-resty/resty/v2"
)

const (
	defaultChangesWait = 25 * time.Second
	// emptyPollDelay is the pause before re-polling after a 204, so a server
	// that answers without holding the request open is not hammered.
	emptyPollDelay = 500 * time.Millisecond
)

// TokenProvider supplies the bearer token attached to every request.
type TokenProvider interface {
	Token() string
}

// HTTPRemoteStore is the HTTP/REST implementation of [RemoteStore].
type HTTPRemoteStore struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	clientID string
	signer   *utils.Signer
	wait     time.Duration
	idle     time.Duration
	tokens   TokenProvider

	logger *logger.Logger
}

// NewHTTPRemoteStore constructs an HTTP/REST implementation of [RemoteStore].
// It normalises and validates the base URL from cfg.Address, configures the
// underlying HTTP client with the resolved base URL and request timeout, and
// signs batch bodies when a hash key is set.
//
// tokens may be nil, in which case requests are sent without an
// Authorization header.
func NewHTTPRemoteStore(cfg config.Adapter, tokens TokenProvider, logger *logger.Logger) (*HTTPRemoteStore, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	wait := defaultChangesWait
	if cfg.RequestTimeout > 0 {
		wait = cfg.RequestTimeout / 2
	}

	ids := utils.NewUUIDGenerator()
	clientID := cfg.ClientID
	if clientID == "" {
		clientID = ids.Generate()
	}

	return &HTTPRemoteStore{
		client:   client,
		ids:      ids,
		clientID: clientID,
		signer:   utils.NewSigner(cfg.HashKey),
		wait:     wait,
		idle:     emptyPollDelay,
		tokens:   tokens,
		logger:   logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Doc implements [RemoteStore]. Ids are allocated client-side as UUIDv7.
func (h *HTTPRemoteStore) Doc(collection, id string) models.DocRef {
	if id == "" {
		id = h.ids.Generate()
	}
	return models.DocRef{Collection: collection, ID: id}
}

// NewBatch implements [RemoteStore]. The batch is committed with a single
// POST /v1/batch request.
func (h *HTTPRemoteStore) NewBatch() Batch {
	return newWriteBatch(h.commit)
}

func (h *HTTPRemoteStore) commit(ctx context.Context, ops []models.BatchOp) error {
	req := models.BatchRequest{
		ClientID: h.clientID,
		Ops:      ops,
		Length:   len(ops),
		Hash:     h.computeTransportHash(ops),
	}

	r := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req)
	if req.Hash != "" {
		r.SetHeader("HashSHA256", req.Hash)
	}

	resp, err := r.Post("/v1/batch")
	if err != nil {
		return fmt.Errorf("batch commit request: %w", err)
	}

	return mapHTTPError(resp)
}

// Get implements [RemoteStore]. It POSTs the query to POST /v1/query and
// decodes the returned page.
func (h *HTTPRemoteStore) Get(ctx context.Context, q models.Query) (models.Page, error) {
	if err := validateQuery(q); err != nil {
		return models.Page{}, err
	}

	body, err := newQueryRequest(q)
	if err != nil {
		return models.Page{}, err
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/v1/query")
	if err != nil {
		return models.Page{}, fmt.Errorf("query request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Page{}, err
	}

	var qr queryResponse
	if err = json.Unmarshal(resp.Body(), &qr); err != nil {
		return models.Page{}, fmt.Errorf("decode query response: %w", err)
	}

	return models.Page{Docs: qr.Docs}, nil
}

// OnSnapshot implements [RemoteStore]. It long-polls GET /v1/changes from a
// single goroutine. The first response is always delivered, even when it
// carries no changes; later empty responses are skipped. Changes written by
// this client are delivered as pending-write snapshots.
func (h *HTTPRemoteStore) OnSnapshot(ctx context.Context, q models.Query, onChange func(models.Snapshot), onError func(error)) (Unsubscribe, error) {
	if err := validateQuery(q); err != nil {
		return nil, err
	}

	body, err := newQueryRequest(q)
	if err != nil {
		return nil, err
	}
	rawQuery, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode subscription query: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	go func() {
		defer cancel()
		h.pollChanges(ctx, string(rawQuery), onChange, onError)
	}()

	return sync.OnceFunc(cancel), nil
}

func (h *HTTPRemoteStore) pollChanges(ctx context.Context, rawQuery string, onChange func(models.Snapshot), onError func(error)) {
	var (
		since int64
		first = true
	)

	for {
		if ctx.Err() != nil {
			return
		}

		resp, err := h.authedRequest(ctx).
			SetQueryParams(map[string]string{
				"query": rawQuery,
				"since": strconv.FormatInt(since, 10),
				"wait":  h.wait.String(),
			}).
			Get("/v1/changes")
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return
			}
			onError(fmt.Errorf("changes request: %w", err))
			return
		}
		if resp.StatusCode() == http.StatusNoContent {
			select {
			case <-ctx.Done():
				return
			case <-time.After(h.idle):
			}
			continue
		}
		if err = mapHTTPError(resp); err != nil {
			onError(err)
			return
		}

		var cr changesResponse
		if err = json.Unmarshal(resp.Body(), &cr); err != nil {
			onError(fmt.Errorf("decode changes response: %w", err))
			return
		}
		since = cr.Seq

		snapshots := snapshotsFromFeed(h.clientID, cr.Changes)
		if first && len(snapshots) == 0 {
			snapshots = []models.Snapshot{{}}
		}
		first = false

		for _, s := range snapshots {
			if ctx.Err() != nil {
				return
			}
			onChange(s)
		}
	}
}

func (h *HTTPRemoteStore) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.clientID != "" {
		req.SetHeader("X-Client-ID", h.clientID)
	}
	if h.tokens == nil {
		return req
	}
	if token := strings.TrimSpace(h.tokens.Token()); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *HTTPRemoteStore) computeTransportHash(v any) string {
	sig, err := h.signer.SignJSON(v)
	if err != nil {
		h.logger.Warn().Err(err).Str("func", "HTTPRemoteStore.computeTransportHash").Msg("batch sent unsigned")
		return ""
	}
	return sig
}
