package paymentapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rajatvats23/swizzleFENg19-sub001/internal/domain/entity"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/domain/repository"
	"github.com/rajatvats23/swizzleFENg19-sub001/pkg/apperror"
	"github.com/sirupsen/logrus"
)

const (
	cashPaymentPath   = "/cash"
	orderPaymentsPath = "/order/"
	reportsPath       = "/reports"

	// IdempotencyKeyHeader carries the submission key to the backend
	IdempotencyKeyHeader = "Idempotency-Key"
	// RequestIDHeader correlates a call with the request that caused it
	RequestIDHeader = "X-Request-ID"
)

// Config configures the payments API client
type Config struct {
	// BaseURL is the environment API_URL; payment paths hang off {BaseURL}/payments
	BaseURL string
	// Token is used when the context carries no bearer token (CLI usage)
	Token string
	// HTTPClient defaults to a client without timeout
	HTTPClient *http.Client
}

// Client talks to the remote payments API
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *logrus.Entry
}

var _ repository.PaymentRepository = (*Client)(nil)

// NewClient creates a payments API client
func NewClient(cfg Config, log *logrus.Entry) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/") + "/payments",
		token:      cfg.Token,
		httpClient: httpClient,
		log:        log.WithField("component", "paymentapi"),
	}
}

// RecordCashPayment posts a cash payment confirmation for an order
func (c *Client) RecordCashPayment(ctx context.Context, orderID string) (*entity.Payment, error) {
	res, err := do[json.RawMessage](ctx, c, http.MethodPost, cashPaymentPath, nil, entity.CashPaymentRequest{OrderID: orderID})
	if err != nil {
		return nil, err
	}
	return c.decodePayment(res.Data)
}

// GetOrderPayments lists the payments recorded for an order
func (c *Client) GetOrderPayments(ctx context.Context, orderID string) ([]entity.Payment, error) {
	res, err := do[json.RawMessage](ctx, c, http.MethodGet, orderPaymentsPath+url.PathEscape(orderID), nil, nil)
	if err != nil {
		return nil, err
	}

	data := bytes.TrimSpace(res.Data)
	if len(data) > 0 && data[0] == '[' {
		var payments []entity.Payment
		if err := json.Unmarshal(data, &payments); err != nil {
			return nil, apperror.NewMalformedResponseError(err)
		}
		c.warnUnknownValues(payments...)
		return payments, nil
	}

	var payload entity.PaymentListPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, apperror.NewMalformedResponseError(err)
	}
	if payload.Payments == nil {
		payload.Payments = []entity.Payment{}
	}
	c.warnUnknownValues(payload.Payments...)
	return payload.Payments, nil
}

// GetPaymentReports fetches the aggregate report of a date window
func (c *Client) GetPaymentReports(ctx context.Context, startDate, endDate, paymentMethod string) (*entity.PaymentReport, error) {
	query := url.Values{}
	query.Set("startDate", startDate)
	query.Set("endDate", endDate)
	if paymentMethod != "" {
		query.Set("paymentMethod", paymentMethod)
	}

	res, err := do[*entity.PaymentReport](ctx, c, http.MethodGet, reportsPath, query, nil)
	if err != nil {
		return nil, err
	}
	if res.Data == nil {
		return nil, apperror.NewMalformedResponseError(fmt.Errorf("report payload is empty"))
	}
	return res.Data, nil
}

// GetPayment fetches a single payment
func (c *Client) GetPayment(ctx context.Context, id string) (*entity.Payment, error) {
	res, err := do[json.RawMessage](ctx, c, http.MethodGet, "/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, err
	}
	return c.decodePayment(res.Data)
}

// decodePayment accepts both {"payment": {...}} and a bare payment object
func (c *Client) decodePayment(data json.RawMessage) (*entity.Payment, error) {
	var payload entity.PaymentPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, apperror.NewMalformedResponseError(err)
	}
	if payload.Payment != nil {
		c.warnUnknownValues(*payload.Payment)
		return payload.Payment, nil
	}

	var payment entity.Payment
	if err := json.Unmarshal(data, &payment); err != nil {
		return nil, apperror.NewMalformedResponseError(err)
	}
	if payment.ID == "" {
		return nil, apperror.NewMalformedResponseError(fmt.Errorf("payment payload has no id"))
	}
	c.warnUnknownValues(payment)
	return &payment, nil
}

// warnUnknownValues logs payments whose status or method is absent or outside
// the known set. They are passed through unchanged.
func (c *Client) warnUnknownValues(payments ...entity.Payment) {
	for i := range payments {
		p := &payments[i]
		if p.HasKnownValues() {
			continue
		}
		c.log.WithFields(logrus.Fields{
			"payment_id":     p.ID,
			"status":         p.Status,
			"payment_method": p.PaymentMethod,
		}).Warn("payment has an unrecognised status or method")
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token := stringFromContext(ctx, bearerTokenKey)
	if token == "" {
		token = c.token
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if requestID := stringFromContext(ctx, requestIDKey); requestID != "" {
		req.Header.Set(RequestIDHeader, requestID)
	}
	if method == http.MethodPost {
		if key := stringFromContext(ctx, idempotencyKeyKey); key != "" {
			req.Header.Set(IdempotencyKeyHeader, key)
		}
	}

	return req, nil
}

// do performs one request and unwraps the response envelope
func do[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (*entity.APIResponse[T], error) {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}

	log := c.log.WithFields(logrus.Fields{
		"method": method,
		"path":   req.URL.Path,
	})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Warn("payments API request failed")
		return nil, apperror.NewTransportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.WithError(err).Warn("failed to read payments API response")
		return nil, apperror.NewTransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := errorMessage(raw)
		log.WithFields(logrus.Fields{
			"status_code":  resp.StatusCode,
			"body_preview": truncateString(string(raw), 200),
		}).Debug("payments API returned non-2xx status")
		return nil, apperror.NewBackendError(resp.StatusCode, message)
	}

	var envelope entity.APIResponse[T]
	if err := json.Unmarshal(raw, &envelope); err != nil {
		log.WithFields(logrus.Fields{
			"status_code":  resp.StatusCode,
			"body_preview": truncateString(string(raw), 200),
		}).WithError(err).Debug("failed to unmarshal payments API response")
		return nil, apperror.NewMalformedResponseError(err)
	}

	if envelope.Status == entity.StatusError {
		return nil, apperror.NewBackendError(http.StatusBadGateway, envelope.Message)
	}

	log.WithField("status_code", resp.StatusCode).Debug("payments API request completed")
	return &envelope, nil
}

// errorMessage extracts the "message" field of an error reply, if any
func errorMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.Message
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
