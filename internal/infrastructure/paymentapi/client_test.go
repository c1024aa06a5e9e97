package paymentapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rajatvats23/swizzleFENg19-sub001/internal/domain/entity"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/domain/enum"
	"github.com/rajatvats23/swizzleFENg19-sub001/pkg/apperror"
	"github.com/rajatvats23/swizzleFENg19-sub001/pkg/logger"
	"github.com/shopspring/decimal"
)

const cashPaymentReply = `{
	"status": "success",
	"message": "Cash payment recorded",
	"data": {
		"payment": {
			"id": "p1",
			"order": "ord123",
			"amount": 500,
			"currency": "INR",
			"status": "successful",
			"paymentMethod": "cash",
			"createdAt": "2024-01-15T10:00:00Z",
			"updatedAt": "2024-01-15T10:00:00Z"
		}
	}
}`

// newTestClient starts a fake payments backend and a client pointing at it
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL + "/api", Token: "cli-token"}, logger.Discard())
}

func TestRecordCashPayment(t *testing.T) {
	var gotBody map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/api/payments/cash" {
			t.Errorf("path = %s, want /api/payments/cash", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if key := r.Header.Get(IdempotencyKeyHeader); key != "key-1" {
			t.Errorf("Idempotency-Key = %q, want key-1", key)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, cashPaymentReply)
	})

	ctx := WithIdempotencyKey(context.Background(), "key-1")
	payment, err := client.RecordCashPayment(ctx, "ord123")
	if err != nil {
		t.Fatalf("RecordCashPayment: %v", err)
	}

	if gotBody["orderId"] != "ord123" {
		t.Errorf("body orderId = %q, want ord123", gotBody["orderId"])
	}
	if payment.ID != "p1" || payment.Order.ID != "ord123" {
		t.Errorf("payment = %+v", payment)
	}
	if !payment.Amount.Equal(decimal.NewFromInt(500)) {
		t.Errorf("amount = %s, want 500", payment.Amount)
	}
	if payment.Status != enum.PaymentStatusSuccessful || payment.PaymentMethod != enum.PaymentMethodCash {
		t.Errorf("status/method = %s/%s", payment.Status, payment.PaymentMethod)
	}
	if payment.HasReceipt() {
		t.Error("payment without receiptUrl must not offer a receipt")
	}
}

func TestRecordCashPaymentBackendError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		io.WriteString(w, `{"status":"error","message":"Cash payment already recorded for this order"}`)
	})

	_, err := client.RecordCashPayment(context.Background(), "ord123")
	if err == nil {
		t.Fatal("expected error")
	}
	appErr := apperror.GetAppError(err)
	if appErr.Kind != apperror.KindBackend || appErr.Code != http.StatusConflict {
		t.Errorf("error = %+v, want backend 409", appErr)
	}
	if got := apperror.UserMessage(err, "fallback"); got != "Cash payment already recorded for this order" {
		t.Errorf("UserMessage = %q", got)
	}
}

func TestBackendErrorWithoutMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, "upstream exploded")
	})

	_, err := client.GetPayment(context.Background(), "p1")
	if !apperror.IsKind(err, apperror.KindBackend) {
		t.Fatalf("error = %v, want backend kind", err)
	}
	if got := apperror.UserMessage(err, "fallback"); got != "fallback" {
		t.Errorf("UserMessage = %q, want fallback", got)
	}
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	client := NewClient(Config{BaseURL: srv.URL}, logger.Discard())

	_, err := client.GetOrderPayments(context.Background(), "ord123")
	if !apperror.IsKind(err, apperror.KindTransport) {
		t.Fatalf("error = %v, want transport kind", err)
	}
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Unwrap() == nil {
		t.Error("transport error should wrap its cause")
	}
}

func TestMalformedResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "<html>oops</html>"},
		{"amount not a number", `{"status":"success","data":{"payment":{"id":"p1","order":"o1","amount":"ten","currency":"INR","status":"pending","paymentMethod":"cash"}}}`},
		{"empty data", `{"status":"success","data":{}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				io.WriteString(w, tt.body)
			})
			_, err := client.GetPayment(context.Background(), "p1")
			if !apperror.IsKind(err, apperror.KindMalformed) {
				t.Errorf("error = %v, want malformed kind", err)
			}
		})
	}
}

func TestGetOrderPayments(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/api/payments/order/ord%2F9" {
			t.Errorf("path = %s, want escaped order id", r.URL.EscapedPath())
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer user-token" {
			t.Errorf("Authorization = %q, want forwarded token", auth)
		}
		if rid := r.Header.Get(RequestIDHeader); rid != "req-1" {
			t.Errorf("X-Request-ID = %q", rid)
		}
		io.WriteString(w, `{"status":"success","message":"ok","data":{"payments":[
			{"id":"p1","order":"ord/9","amount":"120.50","currency":"INR","status":"pending","paymentMethod":"upi"},
			{"id":"p2","order":{"_id":"ord/9","orderNumber":"A-1"},"amount":80,"currency":"INR","status":"failed","paymentMethod":"card","receiptUrl":"https://r/p2"}
		]}}`)
	})

	ctx := WithBearerToken(context.Background(), "user-token")
	ctx = WithRequestID(ctx, "req-1")
	payments, err := client.GetOrderPayments(ctx, "ord/9")
	if err != nil {
		t.Fatalf("GetOrderPayments: %v", err)
	}
	if len(payments) != 2 {
		t.Fatalf("len = %d, want 2", len(payments))
	}
	for _, p := range payments {
		if p.Order.ID != "ord/9" {
			t.Errorf("payment %s references order %q", p.ID, p.Order.ID)
		}
	}
	if payments[0].ID != "p1" || payments[1].ID != "p2" {
		t.Error("backend ordering must be preserved")
	}
	if !payments[1].Order.IsEmbedded() || payments[0].Order.IsEmbedded() {
		t.Error("embedded order detection is wrong")
	}
	if !payments[1].HasReceipt() {
		t.Error("p2 has a receipt")
	}
	if !payments[0].Amount.Equal(decimal.RequireFromString("120.50")) {
		t.Errorf("amount = %s", payments[0].Amount)
	}
}

func TestGetOrderPaymentsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"status":"success","message":"ok","data":{}}`)
	})

	payments, err := client.GetOrderPayments(context.Background(), "ord1")
	if err != nil {
		t.Fatalf("GetOrderPayments: %v", err)
	}
	if payments == nil || len(payments) != 0 {
		t.Errorf("payments = %#v, want empty slice", payments)
	}
}

func TestGetPaymentReportsQuery(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		wantMethod bool
	}{
		{"all methods", "", false},
		{"cash only", "cash", true},
		{"wallet only", "wallet", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/payments/reports" {
					t.Errorf("path = %s", r.URL.Path)
				}
				q := r.URL.Query()
				if q.Get("startDate") != "2024-01-01" || q.Get("endDate") != "2024-01-31" {
					t.Errorf("dates = %s..%s", q.Get("startDate"), q.Get("endDate"))
				}
				_, has := q["paymentMethod"]
				if has != tt.wantMethod {
					t.Errorf("paymentMethod present = %v, want %v (query %q)", has, tt.wantMethod, r.URL.RawQuery)
				}
				if tt.wantMethod && q.Get("paymentMethod") != tt.method {
					t.Errorf("paymentMethod = %q, want %q", q.Get("paymentMethod"), tt.method)
				}
				io.WriteString(w, `{"status":"success","message":"ok","data":{"summary":{"totalAmount":0,"totalCount":0,"methodBreakdown":{"cash":0,"card":0,"upi":0,"wallet":0}},"dailyTotals":[]}}`)
			})

			if _, err := client.GetPaymentReports(context.Background(), "2024-01-01", "2024-01-31", tt.method); err != nil {
				t.Fatalf("GetPaymentReports: %v", err)
			}
		})
	}
}

func TestGetPaymentReportsCashScenario(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"status":"success","message":"ok","data":{
			"summary":{"totalAmount":1750.5,"totalCount":4,"methodBreakdown":{"cash":1750.5,"card":0,"upi":0,"wallet":0}},
			"dailyTotals":[
				{"date":"2024-01-02","amount":500,"count":1},
				{"date":"2024-01-10","amount":1000.25,"count":2},
				{"date":"2024-01-31","amount":250.25,"count":1}
			]}}`)
	})

	report, err := client.GetPaymentReports(context.Background(), "2024-01-01", "2024-01-31", "cash")
	if err != nil {
		t.Fatalf("GetPaymentReports: %v", err)
	}
	if !report.Summary.MethodBreakdown.For(enum.PaymentMethodCash).Equal(report.DailyAmount()) {
		t.Errorf("cash breakdown %s != daily sum %s", report.Summary.MethodBreakdown.Cash, report.DailyAmount())
	}
	if !report.Reconciles() {
		t.Error("report should reconcile")
	}
	if report.DailyCount() != report.Summary.TotalCount {
		t.Errorf("daily count %d != total count %d", report.DailyCount(), report.Summary.TotalCount)
	}
}

func TestGetPaymentAcceptsBarePayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/payments/p7" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer cli-token" {
			t.Errorf("Authorization = %q, want configured token", auth)
		}
		if r.Header.Get(IdempotencyKeyHeader) != "" {
			t.Error("GET must not carry an idempotency key")
		}
		io.WriteString(w, `{"status":"success","message":"ok","data":{"id":"p7","order":"o1","amount":10,"currency":"INR","status":"processing","paymentMethod":"wallet","paymentIntentId":"pi_1","metadata":{"till":"3"}}}`)
	})

	ctx := WithIdempotencyKey(context.Background(), "ignored")
	payment, err := client.GetPayment(ctx, "p7")
	if err != nil {
		t.Fatalf("GetPayment: %v", err)
	}
	if payment.ID != "p7" || payment.PaymentIntentID != "pi_1" {
		t.Errorf("payment = %+v", payment)
	}
	if !strings.Contains(string(payment.Metadata), "till") {
		t.Errorf("metadata = %s", payment.Metadata)
	}
}

func TestErrorEnvelopeWith2xx(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"status":"error","message":"Order is not payable"}`)
	})

	_, err := client.RecordCashPayment(context.Background(), "o1")
	if got := apperror.UserMessage(err, "fallback"); got != "Order is not payable" {
		t.Errorf("UserMessage = %q", got)
	}
}

func TestUnrecognisedValuesArePassedThrough(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		call       func(*Client) ([]entity.Payment, error)
		wantStatus []enum.PaymentStatus
		wantMethod []enum.PaymentMethod
	}{
		{
			name: "unknown status in a list",
			body: `{"status":"success","data":{"payments":[
				{"id":"p1","order":"o1","amount":10,"currency":"INR","status":"successful","paymentMethod":"cash"},
				{"id":"p2","order":"o1","amount":5,"currency":"INR","status":"refunded","paymentMethod":"card"}
			]}}`,
			call: func(c *Client) ([]entity.Payment, error) {
				return c.GetOrderPayments(context.Background(), "o1")
			},
			wantStatus: []enum.PaymentStatus{enum.PaymentStatusSuccessful, "refunded"},
			wantMethod: []enum.PaymentMethod{enum.PaymentMethodCash, enum.PaymentMethodCard},
		},
		{
			name: "unknown method",
			body: `{"status":"success","data":{"payment":{"id":"p1","order":"o1","amount":1,"currency":"INR","status":"pending","paymentMethod":"cheque"}}}`,
			call: func(c *Client) ([]entity.Payment, error) {
				p, err := c.GetPayment(context.Background(), "p1")
				if err != nil {
					return nil, err
				}
				return []entity.Payment{*p}, nil
			},
			wantStatus: []enum.PaymentStatus{enum.PaymentStatusPending},
			wantMethod: []enum.PaymentMethod{"cheque"},
		},
		{
			name: "status and method absent",
			body: `{"data":{"payment":{"id":"p1","order":"o1","amount":10,"currency":"INR"}}}`,
			call: func(c *Client) ([]entity.Payment, error) {
				p, err := c.GetPayment(context.Background(), "p1")
				if err != nil {
					return nil, err
				}
				return []entity.Payment{*p}, nil
			},
			wantStatus: []enum.PaymentStatus{""},
			wantMethod: []enum.PaymentMethod{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				io.WriteString(w, tt.body)
			}))
			t.Cleanup(srv.Close)

			var logged strings.Builder
			log := logger.NewWithWriter("test", logger.Config{Level: "warn"}, &logged)
			client := NewClient(Config{BaseURL: srv.URL + "/api"}, log)

			payments, err := tt.call(client)
			if err != nil {
				t.Fatalf("error = %v, want nil", err)
			}
			if len(payments) != len(tt.wantStatus) {
				t.Fatalf("len = %d, want %d", len(payments), len(tt.wantStatus))
			}
			for i, p := range payments {
				if p.Status != tt.wantStatus[i] || p.PaymentMethod != tt.wantMethod[i] {
					t.Errorf("payment %d = %q/%q, want %q/%q", i, p.Status, p.PaymentMethod, tt.wantStatus[i], tt.wantMethod[i])
				}
			}
			if !strings.Contains(logged.String(), "unrecognised status or method") {
				t.Errorf("no warning logged:\n%s", logged.String())
			}
			if strings.Count(logged.String(), "unrecognised") != 1 {
				t.Errorf("want exactly one warning, log:\n%s", logged.String())
			}
		})
	}
}
