package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	bookingserrors "studio/internal/bookings/errors"
	"studio/internal/bookings/repository"
	"studio/internal/bookings/validator"
	"studio/internal/catalog"
	"studio/internal/events"
	"studio/pkg/config"
	apperrors "studio/pkg/errors"
	"studio/pkg/model"
	"studio/pkg/sanitizer"

	"github.com/jinzhu/now"
)

type BookingService interface {
	Submit(ctx context.Context, req model.BookingRequest) (*model.Booking, error)
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	List(ctx context.Context) ([]*model.Booking, error)
	Delete(ctx context.Context, id string) error
	Transition(ctx context.Context, id string, to model.BookingStatus) (*model.Booking, error)
	MarkPaid(ctx context.Context, id string, payment model.PaymentInfo) (*model.Booking, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	catalog   catalog.Provider
	validator *validator.BookingValidator
	publisher events.Publisher
	cfg       *config.Config
	now       func() time.Time
}

func NewBookingService(
	repo repository.BookingRepository,
	catalog catalog.Provider,
	validator *validator.BookingValidator,
	publisher events.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		catalog:   catalog,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (s *bookingService) Submit(ctx context.Context, req model.BookingRequest) (*model.Booking, error) {
	pkg, err := s.resolvePackage(req.PackageID)
	if err != nil {
		return nil, err
	}

	booking := &model.Booking{
		CustomerName:  sanitizer.NormalizeName(req.CustomerName),
		CustomerPhone: sanitizer.TrimAndNormalize(req.CustomerPhone),
		EventDate:     strings.TrimSpace(req.EventDate),
		PackageID:     pkg.ID,
		PackageName:   pkg.Name,
		PackagePrice:  pkg.Price,
		AdvanceAmount: pkg.Advance,
		Status:        s.initialStatus(),
	}

	if err := s.validate(booking); err != nil {
		return nil, err
	}
	if err := s.checkEventDate(booking); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to save booking", "package_id", pkg.ID, "error", err)
		return nil, apperrors.Persistence("Failed to save booking, please try again", err)
	}

	s.cfg.Log.Info("Booking created",
		"id", booking.ID,
		"package_id", booking.PackageID,
		"event_date", booking.EventDate,
		"status", booking.Status,
	)
	s.publish(ctx, events.NewBookingEvent(events.BookingCreated, booking, ""))

	return booking, nil
}

func (s *bookingService) resolvePackage(id string) (model.Package, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return model.Package{}, apperrors.InvalidSelection("Please select a package")
	}
	pkg, ok := s.catalog.Find(id)
	if !ok {
		return model.Package{}, apperrors.InvalidSelection(fmt.Sprintf("Unknown package: %s", id))
	}
	return pkg, nil
}

// initialStatus is Paid only when payment is trusted on submit; otherwise the
// booking waits for a verified payment webhook.
func (s *bookingService) initialStatus() model.BookingStatus {
	if s.cfg.TrustOnSubmit() {
		return model.StatusPaid
	}
	return model.StatusPending
}

func (s *bookingService) validate(booking *model.Booking) error {
	err := s.validator.Validate(booking)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return apperrors.Validation("Invalid booking", validationErrs.Details())
	}
	return apperrors.Internal("Failed to validate booking", err)
}

func (s *bookingService) checkEventDate(booking *model.Booking) error {
	if !s.cfg.RejectPastEventDates {
		return nil
	}
	day, err := booking.EventDay(s.cfg.Location)
	if err != nil {
		return apperrors.Validation("Invalid booking", map[string]any{
			"event_date": "event_date must be a calendar date in YYYY-MM-DD format",
		})
	}
	today := now.With(s.now().In(s.cfg.Location)).BeginningOfDay()
	if day.Before(today) {
		return apperrors.Validation("Invalid booking", map[string]any{
			"event_date": "event_date must not be in the past",
		})
	}
	return nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapRepositoryError(err, id, "Failed to retrieve booking")
	}
	return booking, nil
}

func (s *bookingService) List(ctx context.Context) ([]*model.Booking, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings", "error", err)
		return nil, apperrors.Persistence("Failed to retrieve bookings", err)
	}
	return bookings, nil
}

func (s *bookingService) Delete(ctx context.Context, id string) error {
	booking, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapRepositoryError(err, id, "Failed to delete booking")
	}

	s.cfg.Log.Info("Booking deleted", "id", id)
	s.publish(ctx, events.NewBookingEvent(events.BookingDeleted, booking, booking.Status))
	return nil
}

// Transition applies an admin status change. Paid is reserved for payment
// confirmation.
func (s *bookingService) Transition(ctx context.Context, id string, to model.BookingStatus) (*model.Booking, error) {
	if !to.IsValid() {
		return nil, apperrors.Validation("Invalid status", map[string]any{
			"status": fmt.Sprintf("status must be one of: %s", statusNames()),
		})
	}
	if to == model.StatusPaid {
		return nil, apperrors.Validation("Invalid status", map[string]any{
			"status": "Paid is set by payment confirmation only",
		})
	}

	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status.IsTerminal() {
		return nil, apperrors.Conflict(fmt.Sprintf("Booking is %s and can no longer change status", current.Status))
	}
	if !current.Status.CanTransitionTo(to) {
		return nil, apperrors.Conflict(fmt.Sprintf("Cannot change booking status from %s to %s", current.Status, to))
	}

	updated, err := s.repo.UpdateStatus(ctx, id, current.Status, to, nil)
	if err != nil {
		return nil, s.mapRepositoryError(err, id, "Failed to update booking status")
	}

	s.cfg.Log.Info("Booking status changed", "id", id, "from", current.Status, "to", to)
	s.publish(ctx, events.NewBookingEvent(events.BookingStatusChanged, updated, current.Status))
	return updated, nil
}

// MarkPaid moves a Pending booking to Paid. Replaying the payment that
// already settled the booking returns it unchanged.
func (s *bookingService) MarkPaid(ctx context.Context, id string, payment model.PaymentInfo) (*model.Booking, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if current.PaymentID != "" && current.PaymentID == payment.PaymentID {
		s.cfg.Log.Info("Payment already recorded", "id", id, "payment_id", payment.PaymentID)
		return current, nil
	}
	if current.Status != model.StatusPending {
		return nil, apperrors.Conflict(fmt.Sprintf("Booking is %s, only Pending bookings can be paid", current.Status))
	}
	if payment.Amount != current.AdvanceAmount {
		return nil, apperrors.Validation("Payment amount mismatch", map[string]any{
			"amount": fmt.Sprintf("amount must equal the booking advance of %d", current.AdvanceAmount),
		})
	}
	if payment.PaidAt.IsZero() {
		payment.PaidAt = s.now()
	}

	updated, err := s.repo.UpdateStatus(ctx, id, model.StatusPending, model.StatusPaid, &payment)
	if err != nil {
		return nil, s.mapRepositoryError(err, id, "Failed to record payment")
	}

	s.cfg.Log.Info("Booking paid", "id", id, "payment_id", payment.PaymentID, "amount", payment.Amount)
	s.publish(ctx, events.NewBookingEvent(events.BookingStatusChanged, updated, model.StatusPending))
	return updated, nil
}

// publish never fails the caller. The booking is already stored and the
// event only drives notifications.
func (s *bookingService) publish(ctx context.Context, event events.BookingEvent) {
	if err := s.publisher.Publish(context.WithoutCancel(ctx), event); err != nil {
		s.cfg.Log.Warn("Failed to publish booking event",
			"event_type", event.EventType,
			"booking_id", event.BookingID,
			"error", err,
		)
	}
}

// mapRepositoryError turns store errors into AppErrors. A malformed id
// cannot name a booking, so it reads as not found.
func (s *bookingService) mapRepositoryError(err error, id, message string) error {
	switch {
	case errors.Is(err, bookingserrors.ErrNotFound), errors.Is(err, bookingserrors.ErrInvalidID):
		return apperrors.NotFoundWithID("Booking", id)
	case errors.Is(err, bookingserrors.ErrStatusConflict):
		return apperrors.Conflict("Booking status changed concurrently, reload and retry")
	default:
		s.cfg.Log.Error(message, "id", id, "error", err)
		return apperrors.Persistence(message, err)
	}
}

func statusNames() string {
	statuses := model.BookingStatuses()
	names := make([]string, len(statuses))
	for i, status := range statuses {
		names[i] = string(status)
	}
	return strings.Join(names, ", ")
}
