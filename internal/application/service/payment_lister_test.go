package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/rajatvats23/swizzleFENg19-sub001/internal/domain/entity"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/domain/enum"
	"github.com/rajatvats23/swizzleFENg19-sub001/pkg/apperror"
)

func TestStatusColor(t *testing.T) {
	tests := []struct {
		status string
		want   enum.StatusColor
	}{
		{"successful", enum.StatusColorPrimary},
		{"pending", enum.StatusColorAccent},
		{"processing", enum.StatusColorAccent},
		{"failed", enum.StatusColorWarn},
		{"refunded", enum.StatusColorDefault},
		{"", enum.StatusColorDefault},
		{"SUCCESSFUL", enum.StatusColorDefault},
	}
	for _, tt := range tests {
		if got := StatusColor(tt.status); got != tt.want {
			t.Errorf("StatusColor(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
	for _, s := range []enum.PaymentStatus{enum.PaymentStatusPending, enum.PaymentStatusProcessing, enum.PaymentStatusSuccessful, enum.PaymentStatusFailed} {
		if s.Color() == enum.StatusColorDefault {
			t.Errorf("known status %q must map to a defined color", s)
		}
	}
}

func TestPaymentListerInit(t *testing.T) {
	repo := &fakePayments{
		orderPayments: func(ctx context.Context, orderID string) ([]entity.Payment, error) {
			return []entity.Payment{
				{ID: "p1", Order: entity.OrderRef{ID: orderID}, Status: enum.PaymentStatusPending},
				{ID: "p2", Order: entity.OrderRef{ID: orderID}, Status: enum.PaymentStatusSuccessful},
			}, nil
		},
	}
	lister := NewPaymentLister(repo, &NotificationBuffer{})
	if !lister.Loading {
		t.Fatal("lister should start loading")
	}

	if err := lister.Init(context.Background(), Params{OrderIDParam: "ord7"}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if lister.Loading {
		t.Error("loading flag should be cleared")
	}
	if len(lister.Payments) != 2 {
		t.Fatalf("payments = %d, want 2", len(lister.Payments))
	}
	for _, p := range lister.Payments {
		if p.Order.ID != "ord7" {
			t.Errorf("payment %s references %q, want ord7", p.ID, p.Order.ID)
		}
	}
}

func TestPaymentListerInitWithoutOrder(t *testing.T) {
	repo := &fakePayments{}
	lister := NewPaymentLister(repo, &NotificationBuffer{})

	if err := lister.Init(context.Background(), Params{}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if len(repo.calls) != 0 {
		t.Errorf("no request expected, got %v", repo.calls)
	}
	if lister.Loading || len(lister.Payments) != 0 {
		t.Errorf("lister = %+v", lister)
	}
}

func TestPaymentListerInitFailure(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"backend message", apperror.NewBackendError(http.StatusNotFound, "Order not found"), "Order not found"},
		{"transport", apperror.NewTransportError(errors.New("dial tcp")), MsgPaymentsLoadFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakePayments{
				orderPayments: func(ctx context.Context, orderID string) ([]entity.Payment, error) {
					return nil, tt.err
				},
			}
			notes := &NotificationBuffer{}
			lister := NewPaymentLister(repo, notes)

			if err := lister.Init(context.Background(), Params{OrderIDParam: "ord1"}); err == nil {
				t.Fatal("expected error")
			}
			if lister.Loading {
				t.Error("loading flag should be cleared on failure")
			}
			if lister.Payments == nil || len(lister.Payments) != 0 {
				t.Errorf("payments = %#v, want empty", lister.Payments)
			}
			last, _ := notes.Last()
			if last.Level != NotificationError || last.Message != tt.wantMsg {
				t.Errorf("notification = %+v", last)
			}
		})
	}
}

func TestPaymentListerReload(t *testing.T) {
	count := 0
	repo := &fakePayments{
		orderPayments: func(ctx context.Context, orderID string) ([]entity.Payment, error) {
			count++
			payments := make([]entity.Payment, count)
			return payments, nil
		},
	}
	lister := NewPaymentLister(repo, &NotificationBuffer{})
	_ = lister.Init(context.Background(), Params{OrderIDParam: "ord1"})
	if err := lister.Reload(context.Background()); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if len(lister.Payments) != 2 || lister.Loading {
		t.Errorf("after reload: %d payments, loading %v", len(lister.Payments), lister.Loading)
	}
}
