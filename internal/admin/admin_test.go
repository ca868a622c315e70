package admin

import (
	"context"
	"testing"
	"time"

	"studio/pkg/config"
	apperrors "studio/pkg/errors"
	"studio/pkg/logger"
	"studio/pkg/model"
)

// ────────────────────────────────────────────────
// Mock booking manager
// ────────────────────────────────────────────────

type mockBookingManager struct {
	listFunc       func(ctx context.Context) ([]*model.Booking, error)
	deleteFunc     func(ctx context.Context, id string) error
	transitionFunc func(ctx context.Context, id string, to model.BookingStatus) (*model.Booking, error)
}

func (m *mockBookingManager) List(ctx context.Context) ([]*model.Booking, error) {
	return m.listFunc(ctx)
}

func (m *mockBookingManager) Delete(ctx context.Context, id string) error {
	return m.deleteFunc(ctx, id)
}

func (m *mockBookingManager) Transition(ctx context.Context, id string, to model.BookingStatus) (*model.Booking, error) {
	return m.transitionFunc(ctx, id, to)
}

func testConfig() *config.Config {
	loc, _ := time.LoadLocation("Asia/Kolkata")
	return &config.Config{
		Location:    loc,
		PhoneRegion: "IN",
		Log: logger.New(logger.Config{
			Level:   "error",
			Format:  logger.JSON,
			Service: "test",
		}),
	}
}

func newTestService(m *mockBookingManager, current time.Time) *adminService {
	svc := NewAdminService(m, testConfig()).(*adminService)
	svc.now = func() time.Time { return current }
	return svc
}

func sampleBookings() []*model.Booking {
	return []*model.Booking{
		{
			ID: "b3", CustomerName: "Rahul Nair", CustomerPhone: "+91 98450 12345",
			EventDate: "2026-04-20", PackageName: "Royal Cinematic", PackagePrice: 85000, AdvanceAmount: 20000,
			Status: model.StatusConfirmed, CreatedAt: time.Date(2026, 3, 2, 6, 0, 0, 0, time.UTC),
		},
		{
			ID: "b2", CustomerName: "Meera Kulkarni", CustomerPhone: "9845012345",
			EventDate: "2026-02-01", PackageName: "Silver Package", PackagePrice: 25000, AdvanceAmount: 5000,
			Status: model.StatusCompleted, CreatedAt: time.Date(2026, 1, 5, 6, 0, 0, 0, time.UTC),
		},
		{
			ID: "b1", CustomerName: "Aditya & Priya", CustomerPhone: "9999999999",
			EventDate: "2026-02-14", PackageName: "Gold Wedding", PackagePrice: 45000, AdvanceAmount: 10000,
			Status: model.StatusCancelled, CreatedAt: time.Date(2025, 12, 20, 6, 0, 0, 0, time.UTC),
		},
	}
}

var march10 = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

// ────────────────────────────────────────────────
// ListBookings / Search
// ────────────────────────────────────────────────

func TestListBookings_DerivedFields(t *testing.T) {
	svc := newTestService(&mockBookingManager{
		listFunc: func(ctx context.Context) ([]*model.Booking, error) { return sampleBookings(), nil },
	}, march10)

	views, err := svc.ListBookings(context.Background())
	if err != nil {
		t.Fatalf("ListBookings() error = %v", err)
	}
	if len(views) != 3 || views[0].ID != "b3" {
		t.Fatalf("order should follow the store, got %d views", len(views))
	}

	if views[0].EventPassed {
		t.Error("2026-04-20 is upcoming on 2026-03-10")
	}
	if !views[2].EventPassed {
		t.Error("2026-02-14 has passed on 2026-03-10")
	}

	want := "https://wa.me/919999999999?text=Hi%20Aditya%20%26%20Priya%2C%20confirming%20your%20booking%20for%202026-02-14."
	if views[2].ContactLink != want {
		t.Errorf("contact_link = %q\nwant %q", views[2].ContactLink, want)
	}
}

func TestListBookings_EventDayUsesStudioTimezone(t *testing.T) {
	booking := &model.Booking{ID: "b", EventDate: "2026-03-10", CustomerPhone: "9999999999"}
	// 20:00 UTC on the 9th is already the 10th in Kolkata, so the event is today.
	svc := newTestService(&mockBookingManager{
		listFunc: func(ctx context.Context) ([]*model.Booking, error) { return []*model.Booking{booking}, nil },
	}, time.Date(2026, 3, 9, 20, 0, 0, 0, time.UTC))

	views, _ := svc.ListBookings(context.Background())
	if views[0].EventPassed {
		t.Error("an event today has not passed")
	}
}

func TestContactLink_UnparseablePhone(t *testing.T) {
	svc := newTestService(&mockBookingManager{}, march10)
	b := &model.Booking{CustomerName: "Asha", CustomerPhone: "ph: 12", EventDate: "2026-05-01"}

	got := svc.contactLink(b)
	want := "https://wa.me/9112?text=Hi%20Asha%2C%20confirming%20your%20booking%20for%202026-05-01."
	if got != want {
		t.Errorf("contactLink() = %q, want %q", got, want)
	}
}

func TestSearch(t *testing.T) {
	views := make([]BookingView, 0)
	for _, b := range sampleBookings() {
		views = append(views, BookingView{Booking: b})
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"b3", "b2", "b1"}},
		{"   ", []string{"b3", "b2", "b1"}},
		{"ADITYA", []string{"b1"}},
		{"gold", []string{"b1"}},
		{"a", []string{"b3", "b2", "b1"}},
		{"package", []string{"b2"}},
		{"nobody", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := Search(views, tt.query)
			if len(got) != len(tt.want) {
				t.Fatalf("Search(%q) returned %d, want %d", tt.query, len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("result %d = %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

// ────────────────────────────────────────────────
// DeleteBooking / UpdateStatus
// ────────────────────────────────────────────────

func TestDeleteBooking_RequiresConfirmation(t *testing.T) {
	deleted := false
	svc := newTestService(&mockBookingManager{
		deleteFunc: func(ctx context.Context, id string) error {
			deleted = true
			return nil
		},
	}, march10)

	err := svc.DeleteBooking(context.Background(), "b1", false)
	if !apperrors.HasCode(err, apperrors.CodeValidation) {
		t.Fatalf("err = %v, want VALIDATION_ERROR", err)
	}
	if deleted {
		t.Error("nothing may be deleted without confirmation")
	}

	if err := svc.DeleteBooking(context.Background(), "b1", true); err != nil || !deleted {
		t.Errorf("confirmed delete: err = %v, deleted = %v", err, deleted)
	}
}

func TestDeleteBooking_Twice(t *testing.T) {
	store := map[string]bool{"b1": true}
	svc := newTestService(&mockBookingManager{
		deleteFunc: func(ctx context.Context, id string) error {
			if !store[id] {
				return apperrors.NotFoundWithID("Booking", id)
			}
			delete(store, id)
			return nil
		},
	}, march10)

	if err := svc.DeleteBooking(context.Background(), "b1", true); err != nil {
		t.Fatal(err)
	}
	if err := svc.DeleteBooking(context.Background(), "b1", true); !apperrors.HasCode(err, apperrors.CodeNotFound) {
		t.Errorf("second delete err = %v, want NOT_FOUND", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	svc := newTestService(&mockBookingManager{
		transitionFunc: func(ctx context.Context, id string, to model.BookingStatus) (*model.Booking, error) {
			b := sampleBookings()[0]
			b.Status = to
			return b, nil
		},
	}, march10)

	view, err := svc.UpdateStatus(context.Background(), "b3", model.StatusCompleted)
	if err != nil {
		t.Fatal(err)
	}
	if view.Status != model.StatusCompleted || view.ContactLink == "" {
		t.Errorf("unexpected view %+v", view)
	}
}

// ────────────────────────────────────────────────
// Dashboard
// ────────────────────────────────────────────────

func TestDashboard(t *testing.T) {
	list := sampleBookings()
	list = append(list, &model.Booking{
		ID: "b4", CustomerName: "Rahul Nair", CustomerPhone: "09845012345",
		EventDate: "2026-06-01", PackageName: "Silver Package", PackagePrice: 25000, AdvanceAmount: 5000,
		Status: model.StatusPaid, CreatedAt: time.Date(2026, 3, 8, 6, 0, 0, 0, time.UTC),
	})
	svc := newTestService(&mockBookingManager{
		listFunc: func(ctx context.Context) ([]*model.Booking, error) { return list, nil },
	}, march10)

	stats, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if stats.TotalRevenue != 30000 {
		t.Errorf("total_revenue = %d, want 30000 (cancelled excluded)", stats.TotalRevenue)
	}
	if stats.ActiveBookings != 2 {
		t.Errorf("active_bookings = %d, want 2", stats.ActiveBookings)
	}
	if stats.PendingPayments != 65000+20000 {
		t.Errorf("pending_payments = %d, want 85000", stats.PendingPayments)
	}
	if stats.TotalClients != 2 {
		t.Errorf("total_clients = %d, want 2 (same number in two formats)", stats.TotalClients)
	}
	if stats.ByStatus[model.StatusCancelled] != 1 || stats.ByStatus[model.StatusPending] != 0 {
		t.Errorf("by_status = %v", stats.ByStatus)
	}

	if len(stats.MonthlyRevenue) != 6 {
		t.Fatalf("monthly_revenue has %d months", len(stats.MonthlyRevenue))
	}
	if stats.MonthlyRevenue[0].Month != "2025-10" || stats.MonthlyRevenue[5].Month != "2026-03" {
		t.Errorf("months = %s..%s", stats.MonthlyRevenue[0].Month, stats.MonthlyRevenue[5].Month)
	}
	if stats.MonthlyRevenue[5].Revenue != 25000 {
		t.Errorf("march revenue = %d, want 25000", stats.MonthlyRevenue[5].Revenue)
	}
	if stats.MonthlyRevenue[3].Revenue != 5000 {
		t.Errorf("january revenue = %d, want 5000", stats.MonthlyRevenue[3].Revenue)
	}
	if stats.MonthlyRevenue[2].Revenue != 0 {
		t.Errorf("december revenue = %d, cancelled booking must not count", stats.MonthlyRevenue[2].Revenue)
	}
}
