package toolserver

import (
	"context"
	"fmt"
	"strings"
)

// WeatherInput is the input for the get_weather tool.
type WeatherInput struct {
	City string `json:"city" jsonschema:"title=City,description=The city to get weather for,required"`
}

var weatherByCity = map[string]string{
	"london":   "It's cloudy and 18°C in London.",
	"new york": "It's sunny and 25°C in New York.",
	"tokyo":    "It's rainy and 20°C in Tokyo.",
	"paris":    "It's 22°C with light showers in Paris.",
}

// GetWeather returns canned weather conditions for a handful of cities.
func GetWeather(_ context.Context, input WeatherInput) (string, error) {
	city := strings.ToLower(strings.TrimSpace(input.City))
	if report, ok := weatherByCity[city]; ok {
		return report, nil
	}
	return fmt.Sprintf("Sorry, I don't have weather data for %s.", input.City), nil
}
