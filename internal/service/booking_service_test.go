package service

import (
	"context"
	"testing"
	"time"

	"github.com/campusmind/campusmind/internal/domain"
)

func TestBookingLifecycle(t *testing.T) {
	env := newTestEnv(t)
	authSvc := NewAuthService(env.cfg, env.counsellorRepo)
	bookingSvc := NewBookingService(env.counsellorRepo, env.bookingRepo, env.sessionRepo)
	ctx := context.Background()

	counsellor, err := authSvc.CreateCounsellor(ctx, &domain.CreateCounsellorRequest{
		Name:     "Dr. Mehta",
		Email:    "mehta@example.edu",
		Password: "pass-1234",
	})
	if err != nil {
		t.Fatalf("CreateCounsellor failed: %v", err)
	}

	start := time.Now().Add(48 * time.Hour)
	booking, err := bookingSvc.Create(ctx, &domain.CreateBookingRequest{
		CounsellorID: counsellor.ID,
		SlotStart:    start,
		SlotEnd:      start.Add(time.Hour),
		Note:         "first session",
	}, "en")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if booking.Status != domain.BookingPending {
		t.Fatalf("status = %q, want pending", booking.Status)
	}

	if err := bookingSvc.Confirm(ctx, booking.ID); err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	bookings, err := bookingSvc.ListForCounsellor(ctx, counsellor.ID)
	if err != nil {
		t.Fatalf("ListForCounsellor failed: %v", err)
	}
	if len(bookings) != 1 || bookings[0].Status != domain.BookingConfirmed {
		t.Fatalf("unexpected bookings: %+v", bookings)
	}

	// only the owning session may cancel
	if err := bookingSvc.Cancel(ctx, booking.ID, "someone-else"); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if err := bookingSvc.Cancel(ctx, booking.ID, booking.SessionID); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
}

func TestBookingValidatesSlot(t *testing.T) {
	env := newTestEnv(t)
	bookingSvc := NewBookingService(env.counsellorRepo, env.bookingRepo, env.sessionRepo)
	ctx := context.Background()

	start := time.Now().Add(24 * time.Hour)
	_, err := bookingSvc.Create(ctx, &domain.CreateBookingRequest{
		CounsellorID: "whoever",
		SlotStart:    start,
		SlotEnd:      start.Add(-time.Hour),
	}, "en")
	if !domain.IsInvalidInput(err) {
		t.Fatalf("expected InvalidInputError for inverted slot, got %v", err)
	}

	_, err = bookingSvc.Create(ctx, &domain.CreateBookingRequest{
		CounsellorID: "whoever",
		SlotStart:    time.Now().Add(-time.Hour),
		SlotEnd:      time.Now().Add(time.Hour),
	}, "en")
	if !domain.IsInvalidInput(err) {
		t.Fatalf("expected InvalidInputError for past slot, got %v", err)
	}

	_, err = bookingSvc.Create(ctx, &domain.CreateBookingRequest{
		CounsellorID: "no-such-counsellor",
		SlotStart:    start,
		SlotEnd:      start.Add(time.Hour),
	}, "en")
	if err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound for unknown counsellor, got %v", err)
	}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	env := newTestEnv(t)
	authSvc := NewAuthService(env.cfg, env.counsellorRepo)
	ctx := context.Background()

	if _, err := authSvc.CreateCounsellor(ctx, &domain.CreateCounsellorRequest{
		Name:     "Dr. Rao",
		Email:    "Rao@Example.edu",
		Password: "pass-1234",
		Admin:    true,
	}); err != nil {
		t.Fatalf("CreateCounsellor failed: %v", err)
	}

	// email comparison is case-insensitive
	resp, err := authSvc.Login(ctx, &domain.LoginRequest{Email: "rao@example.edu", Password: "pass-1234"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Token == "" || !resp.Admin {
		t.Fatalf("unexpected login response: %+v", resp)
	}

	claims, err := authSvc.Verify(resp.Token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if claims.Subject != resp.CounsellorID || !claims.Admin {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	if _, err := authSvc.Login(ctx, &domain.LoginRequest{Email: "rao@example.edu", Password: "wrong"}); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized for bad password, got %v", err)
	}
	if _, err := authSvc.Verify("not-a-token"); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized for garbage token, got %v", err)
	}
}
