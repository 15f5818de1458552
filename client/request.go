package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	opGetFiatCurrencies               = "GetFiatCurrencies"
	opGetBinanceCurrencies            = "GetBinanceCurrencies"
	opGetSpecificExchangeRates        = "GetSpecificExchangeRates"
	opGetSpecificBinanceExchangeRates = "GetSpecificBinanceExchangeRates"

	requestIDHeader = "X-Request-ID"
)

// errorParser extracts the remote error code and message from a failed response body.
type errorParser func(body []byte) (code, message string)

func buildURL(baseURL, path string, query url.Values) string {
	u := baseURL + path

	if len(query) != 0 {
		u += "?" + query.Encode()
	}

	return u
}

func (c *Client) newRequest(ctx context.Context, op, rawURL, requestID string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, &Error{Op: op, URL: rawURL, Kind: ErrInvalidArgument, Cause: err}
	}

	req.Header = c.header.Clone()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)

	if c.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	return req, nil
}

// get performs a GET and returns the body of a 2xx response. Any other
// outcome is reported as *Error.
func (c *Client) get(ctx context.Context, op, rawURL string, parseErr errorParser) ([]byte, error) {
	requestID := uuid.New().String()
	logger := c.logger.With(
		zap.String("op", op),
		zap.String("url", rawURL),
		zap.String("request_id", requestID),
	)

	req, err := c.newRequest(ctx, op, rawURL, requestID)
	if err != nil {
		logger.Debug("cannot create request", zap.Error(err))
		return nil, err
	}

	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		err = &Error{Op: op, URL: rawURL, Kind: ErrTransport, Cause: err}
		logger.Debug("request failed", zap.Duration("duration", time.Since(start)), zap.Error(err))
		return nil, err
	}

	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		err = &Error{Op: op, URL: rawURL, StatusCode: res.StatusCode, Kind: ErrTransport, Cause: err}
		logger.Debug("cannot read response body", zap.Error(err))
		return nil, err
	}

	logger.Debug("response received",
		zap.Int("status", res.StatusCode),
		zap.Duration("duration", time.Since(start)),
		zap.Int("bytes", len(body)),
	)

	if kind := kindFromStatusCode(res.StatusCode); kind != nil {
		e := &Error{Op: op, URL: rawURL, StatusCode: res.StatusCode, Kind: kind}
		if parseErr != nil {
			e.Code, e.Message = parseErr(body)
		}

		logger.Debug("unexpected status code", zap.Error(e))
		return nil, e
	}

	return body, nil
}

func (c *Client) decode(op, rawURL string, body []byte, v interface{}) error {
	if err := json.Unmarshal(body, v); err != nil {
		err = &Error{
			Op:    op,
			URL:   rawURL,
			Kind:  ErrDecode,
			Cause: fmt.Errorf("decoding %d bytes: %w", len(body), err),
		}
		c.logger.Debug("cannot decode response", zap.String("op", op), zap.Error(err))

		return err
	}

	return nil
}
