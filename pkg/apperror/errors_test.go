package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestUserMessage(t *testing.T) {
	const fallback = "Failed to load payments"

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"backend message", NewBackendError(http.StatusConflict, "Order already paid"), "Order already paid"},
		{"wrapped backend message", fmt.Errorf("list: %w", NewBackendError(http.StatusNotFound, "Order not found")), "Order not found"},
		{"backend without message", NewBackendError(http.StatusInternalServerError, ""), fallback},
		{"transport", NewTransportError(errors.New("connection refused")), fallback},
		{"malformed", NewMalformedResponseError(errors.New("bad json")), fallback},
		{"application", NewBadRequestError("Invalid order ID"), fallback},
		{"plain error", errors.New("boom"), fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err, fallback); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetAppError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{"backend keeps status", NewBackendError(http.StatusConflict, "Order already paid"), http.StatusConflict, "Order already paid"},
		{"empty message uses status text", NewBackendError(http.StatusServiceUnavailable, ""), http.StatusServiceUnavailable, "Service Unavailable"},
		{"transport", NewTransportError(errors.New("dial tcp")), http.StatusBadGateway, "Payment service unreachable"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetAppError(tt.err)
			if got.Code != tt.wantCode || got.Message != tt.wantMessage {
				t.Errorf("GetAppError() = %d %q, want %d %q", got.Code, got.Message, tt.wantCode, tt.wantMessage)
			}
		})
	}
}

func TestKinds(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("record cash: %w", NewTransportError(cause))

	if !IsAppError(err) {
		t.Error("IsAppError() = false")
	}
	if !IsKind(err, KindTransport) || IsKind(err, KindBackend) {
		t.Error("IsKind() misclassified a transport error")
	}
	if !errors.Is(err, cause) {
		t.Error("transport error does not unwrap to its cause")
	}
	if IsKind(errors.New("plain"), KindApplication) {
		t.Error("IsKind() matched a plain error")
	}
}
