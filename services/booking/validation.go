package booking

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"splashshine/models"
	"splashshine/services/pricing"
)

var mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)

// ValidationError aggregates every gate failure for one submission, in the
// order the fields are checked. Nothing reaches persistence while one exists.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

func validationErr(problems []string) error {
	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: problems}
}

// validateCustomer checks the fields shared by every booking flow.
func validateCustomer(name, mobile, address string) []string {
	var problems []string
	if strings.TrimSpace(name) == "" {
		problems = append(problems, "customer name is required")
	}
	if strings.TrimSpace(mobile) == "" {
		problems = append(problems, "mobile number is required")
	} else if !mobilePattern.MatchString(mobile) {
		problems = append(problems, "mobile number must be exactly 10 digits")
	}
	if strings.TrimSpace(address) == "" {
		problems = append(problems, "address is required")
	}
	return problems
}

// ValidateCleaning gates a cleaning booking before anything is persisted.
func ValidateCleaning(in models.CleaningBookingInput, today time.Time) error {
	problems := validateCustomer(in.CustomerName, in.Mobile, in.Address)

	if in.CleaningType == "" {
		problems = append(problems, "please select a cleaning type")
	}
	if in.TypeOfService == "" {
		problems = append(problems, "please select type of service")
	}
	if in.TypeOfService == "amc" && in.AMCFrequency == "" {
		problems = append(problems, "please select AMC frequency")
	}
	if len(in.Services) == 0 {
		problems = append(problems, "please select at least one service")
	} else if missing := servicesMissingTier(in.Services); len(missing) > 0 {
		problems = append(problems, fmt.Sprintf("please select square footage for: %s", strings.Join(missing, ", ")))
	}

	switch {
	case in.BookingDate == "":
		problems = append(problems, "please choose a booking date")
	default:
		date, err := time.ParseInLocation("2006-01-02", in.BookingDate, today.Location())
		if err != nil {
			problems = append(problems, "booking date must be in YYYY-MM-DD format")
		} else {
			// Compare calendar dates in the caller's timezone; truncating
			// the wall clock would shift the boundary to UTC midnight.
			startOfToday := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
			if date.Before(startOfToday) {
				problems = append(problems, "booking date cannot be in the past")
			}
		}
	}

	return validationErr(problems)
}

// servicesMissingTier returns the selected services that have no area tier
// assigned or an unknown tier label, sorted for stable error messages.
func servicesMissingTier(services map[string]string) []string {
	var missing []string
	for service, tier := range services {
		if _, ok := pricing.TierHours(tier); !ok {
			missing = append(missing, service)
		}
	}
	sort.Strings(missing)
	return missing
}

// ValidateCarWash gates a car wash booking.
func ValidateCarWash(in models.CarWashBookingInput) error {
	problems := validateCustomer(in.CustomerName, in.Mobile, in.Address)

	if in.VehicleType == "" {
		problems = append(problems, "please select a vehicle type")
	}
	if in.VehicleType == "4_wheeler" {
		if in.WashType == "" {
			problems = append(problems, "please select a wash type")
		}
		if in.CarSize == "" {
			problems = append(problems, "please select a car size")
		}
	}

	return validationErr(problems)
}

// ValidateMovers gates a packers & movers booking.
func ValidateMovers(in models.MoversBookingInput) error {
	problems := validateCustomer(in.CustomerName, in.Mobile, in.Address)

	if in.GoodsType == "" {
		problems = append(problems, "please select a goods type")
	}
	if strings.TrimSpace(in.DistanceKm) == "" {
		problems = append(problems, "please enter the distance in kilometers")
	}

	return validationErr(problems)
}
