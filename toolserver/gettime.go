package toolserver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// TimeInput is the input for the get_time tool.
type TimeInput struct {
	City string `json:"city" jsonschema:"title=City,description=The city to get the local time for,required"`
}

var timezoneByCity = map[string]string{
	"new york": "America/New_York",
	"london":   "Europe/London",
	"tokyo":    "Asia/Tokyo",
	"paris":    "Europe/Paris",
	"sydney":   "Australia/Sydney",
}

// GetTime returns the current local time in a handful of cities.
func GetTime(_ context.Context, input TimeInput) (string, error) {
	city := strings.ToLower(strings.TrimSpace(input.City))
	tz, ok := timezoneByCity[city]
	if !ok {
		return fmt.Sprintf("Sorry, I don't know the timezone for %s.", input.City), nil
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return "", errors.WithMessagef(err, "failed to load timezone %s", tz)
	}
	now := time.Now().In(loc)
	return fmt.Sprintf("The current time in %s is %s.", input.City, now.Format("2006-01-02 15:04:05")), nil
}
