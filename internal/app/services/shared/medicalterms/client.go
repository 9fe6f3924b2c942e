package medicalterms

import (
	"benefits-portal-service/internal/app/contracts"
	"benefits-portal-service/internal/app/models"
	"benefits-portal-service/internal/pkg/constvars"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const DefaultTimeout = 5 * time.Second

type ClientConfig struct {
	BaseUrl       string
	Timeout       time.Duration
	MaxResults    int
	CacheCapacity int
	CacheTTL      time.Duration
	// AbortPrevious cancels the in-flight lookup whenever a new one starts. Use it for
	// a single search box; leave it off for a client shared between requests.
	AbortPrevious bool
}

type Client struct {
	baseUrl       string
	timeout       time.Duration
	maxResults    int
	abortPrevious bool
	httpClient    *http.Client
	cache         *Cache[any]
	group         singleflight.Group
	log           *zap.Logger

	mu          sync.Mutex
	inFlightSeq uint64
	cancelPrev  context.CancelFunc
}

var _ contracts.MedicalTermsClient = (*Client)(nil)

func NewClient(cfg ClientConfig, logger *zap.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = constvars.MedicalTermsMaxResults
	}
	return &Client{
		baseUrl:       strings.TrimRight(cfg.BaseUrl, "/"),
		timeout:       cfg.Timeout,
		maxResults:    cfg.MaxResults,
		abortPrevious: cfg.AbortPrevious,
		httpClient:    &http.Client{},
		cache:         NewCache[any](cfg.CacheCapacity, cfg.CacheTTL),
		log:           logger,
	}
}

func (c *Client) SearchMedications(ctx context.Context, query string) ([]models.MedicationResult, error) {
	value, err := c.lookup(ctx, constvars.MedicalTermsCacheKeyMedication, query, func(ctx context.Context) (any, error) {
		response, err := c.fetch(ctx, constvars.MedicalTermsPathMedications, query, constvars.MedicalTermsExtraFieldStrengths)
		if err != nil {
			return nil, err
		}
		return response.medications(), nil
	})
	if err != nil {
		return nil, err
	}
	return cloneMedications(value.([]models.MedicationResult)), nil
}

func (c *Client) SearchAllergies(ctx context.Context, query string) ([]models.TermResult, error) {
	value, err := c.lookup(ctx, constvars.MedicalTermsCacheKeyAllergy, query, func(ctx context.Context) (any, error) {
		response, err := c.fetch(ctx, constvars.MedicalTermsPathAllergies, query, "")
		if err != nil {
			return nil, err
		}
		return response.terms(), nil
	})
	if err != nil {
		return nil, err
	}
	return cloneTerms(value.([]models.TermResult)), nil
}

func (c *Client) SearchConditions(ctx context.Context, query string) ([]models.TermResult, error) {
	value, err := c.lookup(ctx, constvars.MedicalTermsCacheKeyCondition, query, func(ctx context.Context) (any, error) {
		response, err := c.fetch(ctx, constvars.MedicalTermsPathConditions, query, "")
		if err != nil {
			return nil, err
		}
		return response.terms(), nil
	})
	if err != nil {
		return nil, err
	}
	return cloneTerms(value.([]models.TermResult)), nil
}

func (c *Client) lookup(ctx context.Context, prefix, query string, fetch func(ctx context.Context) (any, error)) (any, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	cacheKey := prefix + strings.TrimSpace(query)

	if value, ok := c.cache.Get(cacheKey); ok {
		c.log.Debug("medicalterms.Client cache hit",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTermQueryKey, cacheKey),
			zap.Bool(constvars.LoggingCacheHitKey, true),
		)
		return value, nil
	}

	if c.abortPrevious {
		callCtx, release := c.beginExclusive(ctx)
		defer release()

		value, err := fetch(callCtx)
		if err != nil {
			return nil, c.classify(ctx, callCtx, err)
		}
		c.cache.Set(cacheKey, value)
		return value, nil
	}

	// Shared clients coalesce identical lookups; a caller going away must not fail
	// the others waiting on the same key, but it stops waiting itself.
	results := c.group.DoChan(strings.ToLower(cacheKey), func() (interface{}, error) {
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()

		value, err := fetch(callCtx)
		if err != nil {
			return nil, c.classify(context.Background(), callCtx, err)
		}
		c.cache.Set(cacheKey, value)
		return value, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-results:
		if result.Err != nil {
			c.log.Warn("medicalterms.Client lookup failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingTermQueryKey, cacheKey),
				zap.Error(result.Err),
			)
			return nil, result.Err
		}
		return result.Val, nil
	}
}

func (c *Client) beginExclusive(ctx context.Context) (context.Context, func()) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)

	c.mu.Lock()
	if c.cancelPrev != nil {
		c.cancelPrev()
	}
	c.inFlightSeq++
	seq := c.inFlightSeq
	c.cancelPrev = cancel
	c.mu.Unlock()

	return callCtx, func() {
		c.mu.Lock()
		if c.inFlightSeq == seq {
			c.cancelPrev = nil
		}
		c.mu.Unlock()
		cancel()
	}
}

// classify maps transport failures onto the closed LookupError set. LookupErrors from
// fetch pass through untouched.
func (c *Client) classify(parent, callCtx context.Context, err error) error {
	var lookupErr *LookupError
	if errors.As(err, &lookupErr) && lookupErr.Kind == KindAPIStatus {
		return lookupErr
	}

	if parent.Err() != nil {
		return parent.Err()
	}

	switch {
	case errors.Is(callCtx.Err(), context.DeadlineExceeded):
		return newTimeoutError(err)
	case errors.Is(callCtx.Err(), context.Canceled):
		return ErrSuperseded
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return newTimeoutError(err)
	}
	if lookupErr != nil {
		return lookupErr
	}
	return newNetworkError(err)
}

func (c *Client) fetch(ctx context.Context, path, query, extraFields string) (*searchResponse, error) {
	params := url.Values{}
	params.Set("terms", strings.TrimSpace(query))
	params.Set("maxList", strconv.Itoa(c.maxResults))
	if extraFields != "" {
		params.Set("ef", extraFields)
	}
	endpoint := c.baseUrl + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return nil, newNetworkError(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, newAPIStatusError(resp.StatusCode, fmt.Errorf("%s", strings.TrimSpace(string(body))))
	}

	response, err := decodeSearchResponse(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		return nil, newAPIStatusError(resp.StatusCode, err)
	}
	return response, nil
}

// Cached slices are shared between callers, so every result handed out is a copy.
func cloneMedications(results []models.MedicationResult) []models.MedicationResult {
	clone := make([]models.MedicationResult, len(results))
	for i, result := range results {
		clone[i] = models.MedicationResult{
			Name:      result.Name,
			Strengths: append([]string{}, result.Strengths...),
		}
	}
	return clone
}

func cloneTerms(results []models.TermResult) []models.TermResult {
	return append([]models.TermResult{}, results...)
}
