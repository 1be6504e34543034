package usecase

import (
	"errors"
	"testing"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
	walletdto "github.com/LavaJover/shvark-gig-service/internal/usecase/dto/wallet"
)

func TestCreditAndDebitKeepLedgerConsistent(t *testing.T) {
	f := newFixture(t)
	f.addUser("v1", nil)

	taskID := "task-1"
	if _, err := f.wallet.Credit(f.ctx, "v1", dec("250.50"), "Task reward", &taskID); err != nil {
		t.Fatal(err)
	}
	if _, err := f.wallet.Debit(f.ctx, "v1", dec("50.25"), "Adjustment"); err != nil {
		t.Fatal(err)
	}

	if got := f.balance("v1"); !got.Equal(dec("200.25")) {
		t.Fatalf("balance = %s, want 200.25", got)
	}
	ok, err := f.wallet.VerifyBalance(f.ctx, "v1")
	if err != nil || !ok {
		t.Fatalf("VerifyBalance = %v, %v", ok, err)
	}

	out, err := f.wallet.GetWallet(f.ctx, "v1")
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Transactions) != 2 {
		t.Errorf("transactions = %d, want 2", len(out.Transactions))
	}
}

func TestDebitInsufficientFundsLeavesNoTrace(t *testing.T) {
	f := newFixture(t)
	f.addUser("v1", nil)
	if _, err := f.wallet.Credit(f.ctx, "v1", dec("10"), "seed", nil); err != nil {
		t.Fatal(err)
	}

	_, err := f.wallet.Debit(f.ctx, "v1", dec("10.01"), "too much")
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}
	if got := f.balance("v1"); !got.Equal(dec("10")) {
		t.Errorf("balance = %s, want 10", got)
	}
	txs, _ := f.store.ListTransactions(f.ctx, "v1", 10)
	if len(txs) != 1 {
		t.Errorf("transactions = %d, want 1", len(txs))
	}
}

func TestDebitUnknownUser(t *testing.T) {
	f := newFixture(t)
	if _, err := f.wallet.Debit(f.ctx, "ghost", dec("1"), "x"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCreditRejectsNonPositiveAmount(t *testing.T) {
	f := newFixture(t)
	f.addUser("v1", nil)
	for _, amount := range []string{"0", "-5"} {
		if _, err := f.wallet.Credit(f.ctx, "v1", dec(amount), "x", nil); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("credit %s: err = %v, want ErrValidation", amount, err)
		}
	}
}

func TestRequestWithdrawal(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantErr error
		balance string
	}{
		{"below minimum", "99.99", domain.ErrBelowMinimumWithdrawal, "500"},
		{"more than balance", "500.01", domain.ErrInsufficientFunds, "500"},
		{"accepted", "100", nil, "400"},
		{"sub-paisa amount", "100.005", domain.ErrValidation, "500"},
		{"trailing zeros", "100.500", nil, "399.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.addUser("v1", nil)
			if _, err := f.wallet.Credit(f.ctx, "v1", dec("500"), "seed", nil); err != nil {
				t.Fatal(err)
			}

			w, err := f.wallet.RequestWithdrawal(f.ctx, &walletdto.WithdrawalInput{UserID: "v1", Amount: dec(tt.amount)})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
			} else if err != nil {
				t.Fatal(err)
			} else if w.Status != domain.WithdrawalPending {
				t.Errorf("status = %s, want pending", w.Status)
			}
			if got := f.balance("v1"); !got.Equal(dec(tt.balance)) {
				t.Errorf("balance = %s, want %s", got, tt.balance)
			}
		})
	}
}

func TestRejectWithdrawalRefunds(t *testing.T) {
	f := newFixture(t)
	f.addUser("v1", nil)
	f.wallet.Credit(f.ctx, "v1", dec("300"), "seed", nil)
	w, err := f.wallet.RequestWithdrawal(f.ctx, &walletdto.WithdrawalInput{UserID: "v1", Amount: dec("200")})
	if err != nil {
		t.Fatal(err)
	}

	if err := f.wallet.RejectWithdrawal(f.ctx, w.ID, "admin", "bank details missing"); err != nil {
		t.Fatal(err)
	}
	if got := f.balance("v1"); !got.Equal(dec("300")) {
		t.Errorf("balance = %s, want 300", got)
	}
	if ok, _ := f.wallet.VerifyBalance(f.ctx, "v1"); !ok {
		t.Error("ledger out of sync after refund")
	}
	if err := f.wallet.RejectWithdrawal(f.ctx, w.ID, "admin", "again"); !errors.Is(err, domain.ErrWithdrawalProcessed) {
		t.Errorf("second reject: err = %v, want ErrWithdrawalProcessed", err)
	}
	if err := f.wallet.ApproveWithdrawal(f.ctx, w.ID, "admin"); !errors.Is(err, domain.ErrWithdrawalProcessed) {
		t.Errorf("approve after reject: err = %v, want ErrWithdrawalProcessed", err)
	}
	if got := f.balance("v1"); !got.Equal(dec("300")) {
		t.Errorf("balance after repeated reject = %s, want 300", got)
	}
	if f.notifier.count(domain.EventWithdrawalRejected) != 1 {
		t.Error("expected one rejection notification")
	}
}

func TestApproveWithdrawal(t *testing.T) {
	f := newFixture(t)
	f.addUser("v1", nil)
	f.wallet.Credit(f.ctx, "v1", dec("300"), "seed", nil)
	w, _ := f.wallet.RequestWithdrawal(f.ctx, &walletdto.WithdrawalInput{UserID: "v1", Amount: dec("300")})

	if err := f.wallet.ApproveWithdrawal(f.ctx, w.ID, "admin"); err != nil {
		t.Fatal(err)
	}
	got, _ := f.store.GetWithdrawalByID(f.ctx, w.ID)
	if got.Status != domain.WithdrawalApproved {
		t.Errorf("status = %s, want approved", got.Status)
	}
	if !f.balance("v1").IsZero() {
		t.Errorf("balance = %s, want 0", f.balance("v1"))
	}
}

func TestCreditDebitRejectSubPaisa(t *testing.T) {
	f := newFixture(t)
	f.addUser("v1", nil)
	if _, err := f.wallet.Credit(f.ctx, "v1", dec("10.001"), "seed", nil); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("credit err = %v, want ErrValidation", err)
	}
	f.wallet.Credit(f.ctx, "v1", dec("10"), "seed", nil)
	if _, err := f.wallet.Debit(f.ctx, "v1", dec("0.015"), "fee"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("debit err = %v, want ErrValidation", err)
	}
	ok, err := f.wallet.VerifyBalance(f.ctx, "v1")
	if err != nil || !ok {
		t.Fatalf("ledger out of balance: ok=%v err=%v", ok, err)
	}
}
