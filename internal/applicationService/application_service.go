package application

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"art-market/internal/marketerrors"
	"art-market/internal/models"
	"art-market/internal/repository"
	"art-market/utils"
)

// Form is what a customer submits to become a seller
type Form struct {
	FullName     string
	Email        string
	Phone        string
	BusinessName string
	BusinessType string
	Website      string
	Address      string
	City         string
	State        string
	ZipCode      string
}

func (f Form) validate() error {
	required := []struct{ name, value string }{
		{"fullName", f.FullName},
		{"email", f.Email},
		{"phone", f.Phone},
		{"address", f.Address},
		{"city", f.City},
		{"state", f.State},
		{"zipCode", f.ZipCode},
	}
	var missing []string
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("service: %w - %s", marketerrors.ErrMissingFields, strings.Join(missing, ", "))
	}
	if !strings.Contains(f.Email, "@") {
		return fmt.Errorf("service: %w - malformed email", marketerrors.ErrInvalidApplication)
	}
	return nil
}

// ApplicationService handles seller onboarding
type ApplicationService struct {
	repo repository.ApplicationDB
	now  func() time.Time
}

// NewApplicationService creates a new ApplicationService instance
func NewApplicationService(repo repository.ApplicationDB) *ApplicationService {
	return &ApplicationService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the service clock
func (s *ApplicationService) WithClock(now func() time.Time) *ApplicationService {
	cp := *s
	cp.now = now
	return &cp
}

// Submit records a pending application for userID. A user may have only
// one pending application at a time.
func (s *ApplicationService) Submit(userID string, f Form) (models.SellerApplication, error) {
	if userID == "" {
		return models.SellerApplication{}, fmt.Errorf("service: %w - missing user", marketerrors.ErrUnauthenticated)
	}
	if err := f.validate(); err != nil {
		return models.SellerApplication{}, err
	}

	app := models.SellerApplication{
		ID:           utils.GenerateID(),
		UserID:       userID,
		FullName:     strings.TrimSpace(f.FullName),
		Email:        strings.TrimSpace(f.Email),
		Phone:        strings.TrimSpace(f.Phone),
		BusinessName: f.BusinessName,
		BusinessType: f.BusinessType,
		Website:      f.Website,
		Address:      f.Address,
		City:         f.City,
		State:        f.State,
		ZipCode:      f.ZipCode,
		Status:       models.ApplicationPending,
		SubmittedAt:  s.now(),
	}
	if err := s.repo.CreateApplication(app); err != nil {
		if errors.Is(err, marketerrors.ErrInvalidApplication) {
			return models.SellerApplication{}, fmt.Errorf("service: %w", err)
		}
		return models.SellerApplication{}, fmt.Errorf("service: failed to store application for user %s: %w", userID, err)
	}

	utils.Info("seller application submitted", map[string]any{"application_id": app.ID, "user_id": userID})
	return app, nil
}

// List returns applications in the given status; empty status returns all
func (s *ApplicationService) List(status models.ApplicationStatus) ([]models.SellerApplication, error) {
	return s.list(func(a models.SellerApplication) bool { return status == "" || a.Status == status })
}

// ListByUser returns every application the user has submitted
func (s *ApplicationService) ListByUser(userID string) ([]models.SellerApplication, error) {
	return s.list(func(a models.SellerApplication) bool { return a.UserID == userID })
}

func (s *ApplicationService) list(keep func(models.SellerApplication) bool) ([]models.SellerApplication, error) {
	all, err := s.repo.ListApplications()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list applications: %w", err)
	}
	out := make([]models.SellerApplication, 0, len(all))
	for _, a := range all {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out, nil
}

// Approve accepts a pending application
func (s *ApplicationService) Approve(id string) (models.SellerApplication, error) {
	return s.review(id, models.ApplicationApproved)
}

// Reject declines a pending application
func (s *ApplicationService) Reject(id string) (models.SellerApplication, error) {
	return s.review(id, models.ApplicationRejected)
}

func (s *ApplicationService) review(id string, to models.ApplicationStatus) (models.SellerApplication, error) {
	now := s.now()
	updated, err := s.repo.UpdateApplication(id, func(a models.SellerApplication) (models.SellerApplication, error) {
		if a.Status != models.ApplicationPending {
			return a, fmt.Errorf("service: %w - application %s is %s", marketerrors.ErrInvalidTransition, id, a.Status)
		}
		a.Status = to
		a.ReviewedAt = &now
		return a, nil
	})
	if err != nil {
		if errors.Is(err, marketerrors.ErrInvalidTransition) {
			return models.SellerApplication{}, err
		}
		return models.SellerApplication{}, fmt.Errorf("service: failed to review application %s: %w", id, err)
	}

	utils.Info("seller application reviewed", map[string]any{"application_id": id, "status": string(to)})
	return updated, nil
}
