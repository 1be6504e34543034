package payment

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestVerifySignature(t *testing.T) {
	g := NewHTTPGateway(Config{KeyID: "key", KeySecret: "secret"})
	valid := hex.EncodeToString(Sign("secret", "order_1", "pay_1"))

	tests := []struct {
		name      string
		orderID   string
		paymentID string
		signature string
		want      bool
	}{
		{"valid", "order_1", "pay_1", valid, true},
		{"other payment", "order_1", "pay_2", valid, false},
		{"other order", "order_2", "pay_1", valid, false},
		{"not hex", "order_1", "pay_1", "zz", false},
		{"empty", "order_1", "pay_1", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.VerifySignature(tt.orderID, tt.paymentID, tt.signature); got != tt.want {
				t.Errorf("VerifySignature = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCreateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orders" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "key" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"Authentication failed"}}`))
			return
		}
		var req createOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(createOrderResponse{
			ID:       "order_abc",
			Amount:   req.Amount,
			Currency: req.Currency,
			Receipt:  req.Receipt,
		})
	}))
	defer srv.Close()

	g := NewHTTPGateway(Config{BaseURL: srv.URL + "/", KeyID: "key", KeySecret: "secret"})
	order, err := g.CreateOrder(context.Background(), 99900, "INR", "rcpt_1")
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if order.OrderID != "order_abc" || order.Amount != 99900 || order.Receipt != "rcpt_1" {
		t.Errorf("order = %+v", order)
	}

	bad := NewHTTPGateway(Config{BaseURL: srv.URL, KeyID: "key", KeySecret: "wrong"})
	if _, err := bad.CreateOrder(context.Background(), 100, "INR", "rcpt_2"); err == nil {
		t.Fatal("expected an error for rejected credentials")
	}
}
