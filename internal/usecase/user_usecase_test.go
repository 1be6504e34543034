package usecase

import (
	"errors"
	"strings"
	"testing"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
	userdto "github.com/LavaJover/shvark-gig-service/internal/usecase/dto/user"
)

func TestRegisterVendorWithReferralCode(t *testing.T) {
	f := newFixture(t)
	starter := f.addPackage("starter", 3, 1, "0")
	users, err := NewDefaultUserUsecase(f.store, f.quota, f.store, starter.ID)
	if err != nil {
		t.Fatal(err)
	}
	users.now = f.users.now
	sponsor := f.addUser("sponsor", nil)

	user, err := users.RegisterVendor(f.ctx, &userdto.RegisterVendorInput{
		Name:         "Asha",
		Email:        "  Asha@Example.com ",
		ReferralCode: strings.ToLower(sponsor.ReferralCode),
	})
	if err != nil {
		t.Fatal(err)
	}
	if user.ReferrerID == nil || *user.ReferrerID != "sponsor" {
		t.Errorf("referrer = %v, want sponsor", user.ReferrerID)
	}
	if user.Email != "asha@example.com" || user.Role != domain.RoleVendor {
		t.Errorf("user = %+v", user)
	}
	if len(user.ReferralCode) != referralCodeLength {
		t.Errorf("referral code %q", user.ReferralCode)
	}

	status, err := f.quota.GetQuotaStatus(f.ctx, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if status.TasksRemaining != 3 || status.SkipsRemaining != 1 {
		t.Errorf("starter quota = %+v", status)
	}
}

func TestRegisterVendorUnknownCode(t *testing.T) {
	f := newFixture(t)
	_, err := f.users.RegisterVendor(f.ctx, &userdto.RegisterVendorInput{
		Name:         "Ravi",
		Email:        "ravi@example.com",
		ReferralCode: "NOPE1234",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestRegisterVendorDuplicateEmailRollsBack(t *testing.T) {
	f := newFixture(t)
	in := &userdto.RegisterVendorInput{Name: "Ravi", Email: "ravi@example.com"}
	first, err := f.users.RegisterVendor(f.ctx, in)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.users.RegisterVendor(f.ctx, in); err == nil {
		t.Fatal("expected duplicate email to fail")
	}
	got, err := f.users.GetUser(f.ctx, first.ID)
	if err != nil || got.Email != "ravi@example.com" {
		t.Errorf("GetUser = %+v, %v", got, err)
	}
}
