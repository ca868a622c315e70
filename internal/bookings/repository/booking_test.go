package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	bookingserrors "studio/internal/bookings/errors"
	"studio/internal/testutil"
	"studio/pkg/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestRepository(t *testing.T) (BookingRepository, *testutil.MongoHelper) {
	t.Helper()
	mongo := testutil.NewMongoHelper(t)
	return NewMongoBookingRepository(mongo.Config()), mongo
}

func newBooking(name, eventDate string) *model.Booking {
	return &model.Booking{
		CustomerName:  name,
		CustomerPhone: "9999999999",
		EventDate:     eventDate,
		PackageID:     "gold",
		PackageName:   "Gold Wedding",
		PackagePrice:  45000,
		AdvanceAmount: 10000,
		Status:        model.StatusPending,
	}
}

func mustCreate(t *testing.T, repo BookingRepository, b *model.Booking) *model.Booking {
	t.Helper()
	if err := repo.Create(context.Background(), b); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return b
}

// ──────────────────────────────────────────────────────────────
// Create / FindByID
// ──────────────────────────────────────────────────────────────

func TestCreate_FindByID(t *testing.T) {
	repo, mongo := newTestRepository(t)
	ctx := context.Background()

	created := mustCreate(t, repo, newBooking("Aditya & Priya", "2026-02-14"))
	if !primitive.IsValidObjectID(created.ID) {
		t.Fatalf("ID = %q, want an ObjectID hex string", created.ID)
	}
	if created.CreatedAt.IsZero() {
		t.Error("created_at should be set on insert")
	}

	got, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("ID = %q, want %q", got.ID, created.ID)
	}
	if got.CustomerName != "Aditya & Priya" || got.PackageName != "Gold Wedding" ||
		got.AdvanceAmount != 10000 || got.Status != model.StatusPending {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if !got.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("created_at = %v, want %v", got.CreatedAt, created.CreatedAt)
	}
	if n := mongo.CountDocuments(t, CollectionName); n != 1 {
		t.Errorf("documents = %d, want 1", n)
	}
}

func TestFindByID_Errors(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	tests := []struct {
		name string
		id   string
		want error
	}{
		{"malformed id", "not-an-object-id", bookingserrors.ErrInvalidID},
		{"unknown id", primitive.NewObjectID().Hex(), bookingserrors.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.FindByID(ctx, tt.id)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

// ──────────────────────────────────────────────────────────────
// FindAll / FindByEventDate
// ──────────────────────────────────────────────────────────────

func TestFindAll_NewestFirst(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	if all, err := repo.FindAll(ctx); err != nil || len(all) != 0 {
		t.Fatalf("empty store: %d bookings, err %v", len(all), err)
	}

	// Inserts in the same millisecond share created_at; _id breaks the tie.
	var ids []string
	for _, name := range []string{"First", "Second", "Third"} {
		ids = append(ids, mustCreate(t, repo, newBooking(name, "2026-02-14")).ID)
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("FindAll() = %d bookings, want 3", len(all))
	}
	for i, want := range []string{ids[2], ids[1], ids[0]} {
		if all[i].ID != want {
			t.Errorf("position %d: %s (%s), want %s", i, all[i].ID, all[i].CustomerName, want)
		}
	}
}

func TestFindByEventDate(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	mustCreate(t, repo, newBooking("Meera", "2026-02-15"))
	mustCreate(t, repo, newBooking("Ravi", "2026-02-16"))
	mustCreate(t, repo, newBooking("Asha", "2026-02-15"))

	got, err := repo.FindByEventDate(ctx, "2026-02-15")
	if err != nil {
		t.Fatalf("FindByEventDate() error = %v", err)
	}
	if len(got) != 2 || got[0].CustomerName != "Asha" || got[1].CustomerName != "Meera" {
		t.Errorf("FindByEventDate() = %+v", got)
	}
}

// ──────────────────────────────────────────────────────────────
// UpdateStatus
// ──────────────────────────────────────────────────────────────

func TestUpdateStatus_RecordsPayment(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()
	booking := mustCreate(t, repo, newBooking("Aditya & Priya", "2026-02-14"))

	paidAt := time.Date(2026, 1, 20, 10, 30, 0, 0, time.UTC)
	updated, err := repo.UpdateStatus(ctx, booking.ID, model.StatusPending, model.StatusPaid,
		&model.PaymentInfo{PaymentID: "pay_1", Amount: 10000, PaidAt: paidAt})
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if updated.Status != model.StatusPaid || updated.PaymentID != "pay_1" {
		t.Errorf("updated = %+v", updated)
	}
	if updated.PaidAt == nil || !updated.PaidAt.Equal(paidAt) {
		t.Errorf("paid_at = %v, want %v", updated.PaidAt, paidAt)
	}

	stored, _ := repo.FindByID(ctx, booking.ID)
	if stored.Status != model.StatusPaid {
		t.Errorf("stored status = %s, want Paid", stored.Status)
	}
}

func TestUpdateStatus_Errors(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()
	booking := mustCreate(t, repo, newBooking("Aditya & Priya", "2026-02-14"))

	tests := []struct {
		name string
		id   string
		from model.BookingStatus
		want error
	}{
		{"status moved on", booking.ID, model.StatusPaid, bookingserrors.ErrStatusConflict},
		{"unknown id", primitive.NewObjectID().Hex(), model.StatusPending, bookingserrors.ErrNotFound},
		{"malformed id", "abc", model.StatusPending, bookingserrors.ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.UpdateStatus(ctx, tt.id, tt.from, model.StatusConfirmed, nil)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	stored, _ := repo.FindByID(ctx, booking.ID)
	if stored.Status != model.StatusPending {
		t.Errorf("failed updates must not change the booking, status = %s", stored.Status)
	}
}

// ──────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────

func TestDelete_Twice(t *testing.T) {
	repo, mongo := newTestRepository(t)
	ctx := context.Background()
	booking := mustCreate(t, repo, newBooking("Aditya & Priya", "2026-02-14"))

	if err := repo.Delete(ctx, booking.ID); err != nil {
		t.Fatalf("first Delete() error = %v", err)
	}
	if err := repo.Delete(ctx, booking.ID); !errors.Is(err, bookingserrors.ErrNotFound) {
		t.Errorf("second Delete() err = %v, want ErrNotFound", err)
	}
	if _, err := repo.FindByID(ctx, booking.ID); !errors.Is(err, bookingserrors.ErrNotFound) {
		t.Errorf("FindByID after delete err = %v, want ErrNotFound", err)
	}
	if n := mongo.CountDocuments(t, CollectionName); n != 0 {
		t.Errorf("documents = %d, want 0", n)
	}
	if err := repo.Delete(ctx, "zzz"); !errors.Is(err, bookingserrors.ErrInvalidID) {
		t.Errorf("malformed id err = %v, want ErrInvalidID", err)
	}
}
