package acuity

import (
	"benefits-portal-service/internal/app/config"
	"benefits-portal-service/internal/app/contracts"
	"benefits-portal-service/internal/pkg/acuity_dto"
	"benefits-portal-service/internal/pkg/constvars"
	"benefits-portal-service/internal/pkg/exceptions"
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const maxErrorBodyBytes = 4096

type acuityClient struct {
	BaseUrl    string
	Log        *zap.Logger
	httpClient *http.Client
	limiter    *rate.Limiter
	authHeader string
}

// NewAcuityClient builds the provider client. The Basic credential is encoded once here;
// with either secret missing the client still starts and every call fails fast.
func NewAcuityClient(cfg config.AppScheduling, logger *zap.Logger) contracts.SchedulingProviderClient {
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = 1
	}

	client := &acuityClient{
		BaseUrl:    strings.TrimRight(cfg.BaseUrl, "/"),
		Log:        logger,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(limit, burst),
	}

	if cfg.UserID == "" || cfg.ApiKey == "" {
		logger.Warn("acuityClient credentials are not configured, scheduling will serve fallback data",
			zap.String(constvars.LoggingUpstreamUrlKey, client.BaseUrl),
		)
		return client
	}

	client.authHeader = BuildBasicAuthHeader(cfg.UserID, cfg.ApiKey)
	return client
}

func BuildBasicAuthHeader(userID, apiKey string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(userID+":"+apiKey))
}

func (c *acuityClient) do(ctx context.Context, method, path string, query url.Values, payload, out interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if c.authHeader == "" {
		return exceptions.ErrSchedulingMissingCredentials(exceptions.ErrSchedulingCredentialsMissing)
	}

	err := c.limiter.Wait(ctx)
	if err != nil {
		c.Log.Warn("acuityClient.do limiter rejected call",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSchedulingRateLimited(fmt.Errorf("%w: %v", exceptions.ErrSchedulingLimiterRejected, err))
	}

	endpoint := c.BaseUrl + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		c.Log.Error("acuityClient.do error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, c.authHeader)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if payload != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.Log.Error("acuityClient.do error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, method),
			zap.String(constvars.LoggingUpstreamUrlKey, endpoint),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		upstreamErr := readProviderError(resp.Body)
		c.Log.Error("acuityClient.do provider returned non-2xx status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, method),
			zap.String(constvars.LoggingUpstreamUrlKey, endpoint),
			zap.Int(constvars.LoggingUpstreamStatusKey, resp.StatusCode),
			zap.Error(upstreamErr),
		)
		return exceptions.ErrSchedulingProviderStatus(upstreamErr, resp.StatusCode, path)
	}

	if out == nil {
		return nil
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		c.Log.Error("acuityClient.do error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUpstreamUrlKey, endpoint),
			zap.Error(err),
		)
		return exceptions.ErrSchedulingProviderDecode(err, path)
	}
	return nil
}

func readProviderError(body io.Reader) error {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBodyBytes))
	if err != nil {
		return err
	}

	var errorBody acuity_dto.ErrorBody
	if json.Unmarshal(raw, &errorBody) == nil && errorBody.Message != "" {
		return errors.New(errorBody.Message)
	}

	message := strings.TrimSpace(string(raw))
	if message == "" {
		message = "empty response body"
	}
	return errors.New(message)
}
