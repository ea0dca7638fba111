package toolserver

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetWeather(t *testing.T) {
	t.Parallel()

	tcases := []struct {
		city string
		exp  string
	}{
		{"London", "It's cloudy and 18°C in London."},
		{"  london  ", "It's cloudy and 18°C in London."},
		{"New York", "It's sunny and 25°C in New York."},
		{"Tokyo", "It's rainy and 20°C in Tokyo."},
		{"Paris", "It's 22°C with light showers in Paris."},
		{"Atlantis", "Sorry, I don't have weather data for Atlantis."},
	}
	for _, tc := range tcases {
		t.Run(tc.city, func(t *testing.T) {
			got, err := GetWeather(context.Background(), WeatherInput{City: tc.city})
			require.NoError(t, err)
			assert.Equal(t, tc.exp, got)
		})
	}
}

func TestCalculate(t *testing.T) {
	t.Parallel()

	got, err := Calculate(context.Background(), CalculateInput{Expression: "123 * 45 + 9"})
	require.NoError(t, err)
	assert.Equal(t, "5544", got)

	got, err = Calculate(context.Background(), CalculateInput{Expression: "7 / 2"})
	require.NoError(t, err)
	assert.Equal(t, "3.5", got)

	_, err = Calculate(context.Background(), CalculateInput{Expression: `__import__("os")`})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error evaluating expression")

	_, err = Calculate(context.Background(), CalculateInput{Expression: ""})
	require.Error(t, err)
}

func TestGetTime(t *testing.T) {
	t.Parallel()

	got, err := GetTime(context.Background(), TimeInput{City: "Tokyo"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "The current time in Tokyo is "))

	got, err = GetTime(context.Background(), TimeInput{City: "Gotham"})
	require.NoError(t, err)
	assert.Equal(t, "Sorry, I don't know the timezone for Gotham.", got)
}

func TestInputSchema(t *testing.T) {
	t.Parallel()

	m := inputSchema(reflect.TypeOf(WeatherInput{}))
	require.NotNil(t, m)
	assert.Equal(t, "object", m["type"])

	props, ok := m["properties"].(map[string]any)
	require.True(t, ok)
	city, ok := props["city"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "City", city["title"])
	assert.Equal(t, "string", city["type"])
}

func TestNewServer(t *testing.T) {
	t.Parallel()

	server := NewServer()
	require.NotNil(t, server)
}
