// Package admin backs the studio owner's booking console.
package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"studio/pkg/config"
	apperrors "studio/pkg/errors"
	"studio/pkg/model"
	"studio/pkg/sanitizer"
	"studio/pkg/whatsapp"

	"github.com/jinzhu/now"
)

const revenueMonths = 6

// BookingView is a booking as the console shows it. EventPassed is derived
// at read time and never stored.
type BookingView struct {
	*model.Booking
	EventPassed bool   `json:"event_passed"`
	ContactLink string `json:"contact_link"`
}

type MonthlyRevenue struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}

type DashboardStats struct {
	TotalRevenue    int64                       `json:"total_revenue"`
	ActiveBookings  int                         `json:"active_bookings"`
	PendingPayments int64                       `json:"pending_payments"`
	TotalClients    int                         `json:"total_clients"`
	ByStatus        map[model.BookingStatus]int `json:"by_status"`
	MonthlyRevenue  []MonthlyRevenue            `json:"monthly_revenue"`
}

// BookingManager is the part of the booking service the console drives.
type BookingManager interface {
	List(ctx context.Context) ([]*model.Booking, error)
	Delete(ctx context.Context, id string) error
	Transition(ctx context.Context, id string, to model.BookingStatus) (*model.Booking, error)
}

type AdminService interface {
	ListBookings(ctx context.Context) ([]BookingView, error)
	Search(views []BookingView, query string) []BookingView
	DeleteBooking(ctx context.Context, id string, confirmed bool) error
	UpdateStatus(ctx context.Context, id string, status model.BookingStatus) (*BookingView, error)
	Dashboard(ctx context.Context) (*DashboardStats, error)
}

type adminService struct {
	bookings BookingManager
	cfg      *config.Config
	now      func() time.Time
}

func NewAdminService(bookings BookingManager, cfg *config.Config) AdminService {
	return &adminService{bookings: bookings, cfg: cfg, now: time.Now}
}

// ListBookings returns every booking, newest first as the store orders them.
func (s *adminService) ListBookings(ctx context.Context) ([]BookingView, error) {
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}

	today := s.today()
	views := make([]BookingView, len(bookings))
	for i, b := range bookings {
		views[i] = s.view(b, today)
	}
	return views, nil
}

func (s *adminService) Search(views []BookingView, query string) []BookingView {
	return Search(views, query)
}

// Search filters already loaded views by a case-insensitive substring of the
// customer or package name. A blank query returns views unchanged.
func Search(views []BookingView, query string) []BookingView {
	q := sanitizer.NormalizeKey(query)
	if q == "" {
		return views
	}

	matches := make([]BookingView, 0, len(views))
	for _, v := range views {
		if strings.Contains(strings.ToLower(v.CustomerName), q) ||
			strings.Contains(strings.ToLower(v.PackageName), q) {
			matches = append(matches, v)
		}
	}
	return matches
}

func (s *adminService) DeleteBooking(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return apperrors.Validation("Deletion must be confirmed", map[string]any{
			"confirm": "set confirm=true to delete this booking",
		})
	}
	if err := s.bookings.Delete(ctx, id); err != nil {
		return err
	}
	s.cfg.Log.Info("Booking deleted from console", "id", id)
	return nil
}

func (s *adminService) UpdateStatus(ctx context.Context, id string, status model.BookingStatus) (*BookingView, error) {
	booking, err := s.bookings.Transition(ctx, id, status)
	if err != nil {
		return nil, err
	}
	view := s.view(booking, s.today())
	return &view, nil
}

func (s *adminService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}

	current := s.now().In(s.cfg.Location)
	today := now.With(current).BeginningOfDay()
	firstMonth := now.With(current).BeginningOfMonth().AddDate(0, -(revenueMonths - 1), 0)

	stats := &DashboardStats{
		ByStatus:       make(map[model.BookingStatus]int, len(model.BookingStatuses())),
		MonthlyRevenue: make([]MonthlyRevenue, revenueMonths),
	}
	for _, status := range model.BookingStatuses() {
		stats.ByStatus[status] = 0
	}
	for i := range stats.MonthlyRevenue {
		stats.MonthlyRevenue[i].Month = firstMonth.AddDate(0, i, 0).Format("2006-01")
	}

	clients := make(map[string]struct{})
	for _, b := range bookings {
		stats.ByStatus[b.Status]++
		clients[s.clientKey(b.CustomerPhone)] = struct{}{}

		if b.Status == model.StatusCancelled {
			continue
		}
		stats.TotalRevenue += b.AdvanceAmount

		created := b.CreatedAt.In(s.cfg.Location)
		if !created.Before(firstMonth) {
			idx := monthsBetween(firstMonth, created)
			if idx >= 0 && idx < revenueMonths {
				stats.MonthlyRevenue[idx].Revenue += b.AdvanceAmount
			}
		}

		if b.Status != model.StatusCompleted && !s.eventPassed(b, today) {
			stats.ActiveBookings++
			stats.PendingPayments += b.BalanceDue()
		}
	}
	stats.TotalClients = len(clients)

	return stats, nil
}

func (s *adminService) today() time.Time {
	return now.With(s.now().In(s.cfg.Location)).BeginningOfDay()
}

func (s *adminService) view(b *model.Booking, today time.Time) BookingView {
	return BookingView{
		Booking:     b,
		EventPassed: s.eventPassed(b, today),
		ContactLink: s.contactLink(b),
	}
}

// eventPassed is false for dates that do not parse; such bookings stay visible
// as upcoming rather than silently dropping out of active counts.
func (s *adminService) eventPassed(b *model.Booking, today time.Time) bool {
	day, err := b.EventDay(s.cfg.Location)
	if err != nil {
		return false
	}
	return day.Before(today)
}

func (s *adminService) contactLink(b *model.Booking) string {
	text := fmt.Sprintf("Hi %s, confirming your booking for %s.", b.CustomerName, b.EventDate)
	return whatsapp.Link(sanitizer.WhatsAppDigits(b.CustomerPhone, s.cfg.PhoneRegion), text)
}

func (s *adminService) clientKey(phone string) string {
	if e164 := sanitizer.NormalizePhone(phone, s.cfg.PhoneRegion); e164 != "" {
		return e164
	}
	return sanitizer.Digits(phone)
}

func monthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}
