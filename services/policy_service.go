package services

import (
	"encoding/json"
	"log"
	"time"

	"github.com/odroffice/odr-go/config"
	"github.com/odroffice/odr-go/models"
	"github.com/odroffice/odr-go/pkg/apperrors"
	"github.com/odroffice/odr-go/repositories"
	"gorm.io/datatypes"
)

type PolicyService struct {
	Repos *repositories.Repos
}

func NewPolicyService(repos *repositories.Repos) *PolicyService {
	return &PolicyService{Repos: repos}
}

// IsIntakeAllowed decides whether new-request intake is open at the given
// instant. Checks run in strict precedence: time-of-day window, then an
// explicit per-date override, then the weekday allow-list. An earlier
// failure is final. The evaluator fails open only on storage errors, never
// on a value it successfully read and rejected.
func (s *PolicyService) IsIntakeAllowed(now time.Time) bool {
	restriction, err := s.Repos.Policy.GetRestriction()
	if err != nil {
		log.Printf("intake policy: failed to load restriction, failing open: %v", err)
		return true
	}

	startStr, endStr := config.DefaultStartTime, config.DefaultEndTime
	var daysRaw datatypes.JSON
	if restriction != nil {
		startStr, endStr = restriction.StartTime, restriction.EndTime
		daysRaw = restriction.AvailableDays
	}

	start := parseTimeOfDay(startStr, config.DefaultStartTime)
	end := parseTimeOfDay(endStr, config.DefaultEndTime)
	current := now.Hour()*3600 + now.Minute()*60 + now.Second()

	var inWindow bool
	if start <= end {
		inWindow = start <= current && current <= end
	} else {
		// Overnight window, e.g. 22:00 to 06:00.
		inWindow = current >= start || current <= end
	}
	if !inWindow {
		return false
	}

	override, err := s.Repos.Policy.GetDateOverride(now)
	if err != nil {
		log.Printf("intake policy: failed to load date override, failing open: %v", err)
		return true
	}
	if override != nil {
		// An explicit date record beats the weekday rule in both directions.
		return override.IsAvailable
	}

	days := parseDays(daysRaw)
	weekday := now.Weekday().String()
	for _, d := range days {
		if d == weekday {
			return true
		}
	}
	return false
}

// parseTimeOfDay returns seconds since midnight, falling back when the
// stored value is unparsable.
func parseTimeOfDay(value, fallback string) int {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Hour()*3600 + t.Minute()*60 + t.Second()
		}
	}
	t, err := time.Parse("15:04:05", fallback)
	if err != nil {
		return 9 * 3600
	}
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

func parseDays(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return config.DefaultDays
	}
	var days []string
	if err := json.Unmarshal(raw, &days); err != nil || len(days) == 0 {
		return config.DefaultDays
	}
	return days
}

func (s *PolicyService) GetRestriction() (*models.IntakeRestriction, error) {
	return s.Repos.Policy.GetRestriction()
}

func (s *PolicyService) UpdateRestriction(actor Actor, startTime, endTime string, days []string, announcement string) error {
	if !Can(actor, ActionManageSettings) {
		return apperrors.Authorization("actor %s may not manage intake settings", actor.ID)
	}
	for _, v := range []string{startTime, endTime} {
		if _, err := time.Parse("15:04:05", v); err != nil {
			return apperrors.Validation("malformed time %q, want HH:MM:SS", v)
		}
	}
	for _, d := range days {
		if !validWeekday(d) {
			return apperrors.Validation("unknown weekday %q", d)
		}
	}
	raw, err := json.Marshal(days)
	if err != nil {
		return apperrors.Validation("unencodable day list")
	}
	return s.Repos.Policy.UpsertRestriction(&models.IntakeRestriction{
		StartTime:     startTime,
		EndTime:       endTime,
		AvailableDays: raw,
		Announcement:  announcement,
	})
}

func (s *PolicyService) SetDateOverride(actor Actor, date time.Time, isAvailable bool, reason string) error {
	if !Can(actor, ActionManageSettings) {
		return apperrors.Authorization("actor %s may not manage intake settings", actor.ID)
	}
	return s.Repos.Policy.UpsertDateOverride(&models.AvailableDate{
		Date:        date,
		IsAvailable: isAvailable,
		Reason:      reason,
	})
}

func (s *PolicyService) SetDateOverrides(actor Actor, dates []time.Time, isAvailable bool, reason string) error {
	for _, d := range dates {
		if err := s.SetDateOverride(actor, d, isAvailable, reason); err != nil {
			return err
		}
	}
	return nil
}

func (s *PolicyService) DeleteDateOverride(actor Actor, date time.Time) (bool, error) {
	if !Can(actor, ActionManageSettings) {
		return false, apperrors.Authorization("actor %s may not manage intake settings", actor.ID)
	}
	return s.Repos.Policy.DeleteDateOverride(date)
}

func (s *PolicyService) ListDateOverrides() ([]models.AvailableDate, error) {
	return s.Repos.Policy.ListDateOverrides()
}

func (s *PolicyService) UpcomingRestrictions(daysAhead int) ([]models.AvailableDate, error) {
	return s.Repos.Policy.ListUpcoming(daysAhead)
}

func validWeekday(d string) bool {
	switch d {
	case "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday":
		return true
	}
	return false
}
