package services_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/odroffice/odr-go/models"
	"github.com/odroffice/odr-go/repositories"
	"github.com/odroffice/odr-go/repositories/mock_repositories"
	"github.com/odroffice/odr-go/services"
	"gorm.io/datatypes"
)

func setupPolicyMocks(t *testing.T) (*services.PolicyService, *mock_repositories.MockPolicyRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockPolicy := mock_repositories.NewMockPolicyRepo(ctrl)
	repos := &repositories.Repos{Policy: mockPolicy}
	return services.NewPolicyService(repos), mockPolicy
}

func daysJSON(t *testing.T, days ...string) datatypes.JSON {
	raw, err := json.Marshal(days)
	if err != nil {
		t.Fatalf("marshal days: %v", err)
	}
	return raw
}

func TestIsIntakeAllowedWeekdayDefaults(t *testing.T) {
	svc, mockPolicy := setupPolicyMocks(t)

	// Saturday 2025-01-04, 10:00, no restriction row: the default window
	// admits it but the default Mon-Fri day list does not.
	saturday := time.Date(2025, 1, 4, 10, 0, 0, 0, time.UTC)

	mockPolicy.EXPECT().GetRestriction().Return(nil, nil)
	mockPolicy.EXPECT().GetDateOverride(saturday).Return(nil, nil)

	if svc.IsIntakeAllowed(saturday) {
		t.Fatal("expected Saturday to be blocked by the default day list")
	}
}

func TestIsIntakeAllowedDateOverrideBeatsWeekday(t *testing.T) {
	svc, mockPolicy := setupPolicyMocks(t)

	saturday := time.Date(2025, 1, 4, 10, 0, 0, 0, time.UTC)

	mockPolicy.EXPECT().GetRestriction().Return(nil, nil)
	mockPolicy.EXPECT().GetDateOverride(saturday).Return(&models.AvailableDate{
		Date:        saturday,
		IsAvailable: true,
		Reason:      "special weekend opening",
	}, nil)

	if !svc.IsIntakeAllowed(saturday) {
		t.Fatal("expected the date override to open a Saturday")
	}
}

func TestIsIntakeAllowedOverrideClosesWeekday(t *testing.T) {
	svc, mockPolicy := setupPolicyMocks(t)

	// Wednesday 2025-01-01 would normally pass the weekday rule.
	wednesday := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	mockPolicy.EXPECT().GetRestriction().Return(nil, nil)
	mockPolicy.EXPECT().GetDateOverride(wednesday).Return(&models.AvailableDate{
		Date:        wednesday,
		IsAvailable: false,
		Reason:      "public holiday",
	}, nil)

	if svc.IsIntakeAllowed(wednesday) {
		t.Fatal("expected the date override to close a weekday")
	}
}

func TestIsIntakeAllowedOvernightWindow(t *testing.T) {
	svc, mockPolicy := setupPolicyMocks(t)

	restriction := &models.IntakeRestriction{
		ID:            1,
		StartTime:     "22:00:00",
		EndTime:       "06:00:00",
		AvailableDays: daysJSON(t, "Wednesday", "Thursday"),
	}

	// 23:00 Wednesday falls inside the wrap-around window.
	lateNight := time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC)
	mockPolicy.EXPECT().GetRestriction().Return(restriction, nil)
	mockPolicy.EXPECT().GetDateOverride(lateNight).Return(nil, nil)
	if !svc.IsIntakeAllowed(lateNight) {
		t.Fatal("expected 23:00 inside a 22:00-06:00 window to be allowed")
	}

	// Midday is outside both halves of the wrap-around; the date override is
	// never consulted because an earlier check already failed.
	midday := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	mockPolicy.EXPECT().GetRestriction().Return(restriction, nil)
	if svc.IsIntakeAllowed(midday) {
		t.Fatal("expected midday outside a 22:00-06:00 window to be blocked")
	}
}

func TestIsIntakeAllowedMalformedTimesFallBack(t *testing.T) {
	svc, mockPolicy := setupPolicyMocks(t)

	restriction := &models.IntakeRestriction{
		ID:            1,
		StartTime:     "not-a-time",
		EndTime:       "also-bad",
		AvailableDays: daysJSON(t, "Wednesday"),
	}

	// The fallback window is 09:00-17:00, so 08:00 stays blocked.
	early := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	mockPolicy.EXPECT().GetRestriction().Return(restriction, nil)
	if svc.IsIntakeAllowed(early) {
		t.Fatal("expected 08:00 to be blocked by the fallback window")
	}

	inside := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	mockPolicy.EXPECT().GetRestriction().Return(restriction, nil)
	mockPolicy.EXPECT().GetDateOverride(inside).Return(nil, nil)
	if !svc.IsIntakeAllowed(inside) {
		t.Fatal("expected 10:00 to pass the fallback window")
	}
}

func TestIsIntakeAllowedFailsOpenOnStorageError(t *testing.T) {
	svc, mockPolicy := setupPolicyMocks(t)

	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	mockPolicy.EXPECT().GetRestriction().Return(nil, errors.New("connection refused"))
	if !svc.IsIntakeAllowed(now) {
		t.Fatal("expected a restriction read failure to fail open")
	}

	mockPolicy.EXPECT().GetRestriction().Return(nil, nil)
	mockPolicy.EXPECT().GetDateOverride(now).Return(nil, errors.New("connection refused"))
	if !svc.IsIntakeAllowed(now) {
		t.Fatal("expected an override read failure to fail open")
	}
}

func TestUpdateRestrictionValidation(t *testing.T) {
	svc, mockPolicy := setupPolicyMocks(t)
	admin := services.Actor{ID: "admin@example.com", Role: "admin"}

	if err := svc.UpdateRestriction(admin, "9am", "17:00:00", []string{"Monday"}, ""); err == nil {
		t.Fatal("expected a malformed start time to be rejected")
	}
	if err := svc.UpdateRestriction(admin, "09:00:00", "17:00:00", []string{"Funday"}, ""); err == nil {
		t.Fatal("expected an unknown weekday to be rejected")
	}
	if err := svc.UpdateRestriction(services.Actor{ID: "u", Role: "user"}, "09:00:00", "17:00:00", nil, ""); err == nil {
		t.Fatal("expected a non-admin to be refused")
	}

	mockPolicy.EXPECT().UpsertRestriction(gomock.Any()).DoAndReturn(func(r *models.IntakeRestriction) error {
		if r.StartTime != "09:00:00" || r.EndTime != "17:00:00" {
			t.Fatalf("unexpected window persisted: %s-%s", r.StartTime, r.EndTime)
		}
		return nil
	})
	if err := svc.UpdateRestriction(admin, "09:00:00", "17:00:00", []string{"Monday", "Tuesday"}, "note"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
