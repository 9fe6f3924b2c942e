package acuity

import (
	"benefits-portal-service/internal/pkg/acuity_dto"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		expected string
		wantErr  bool
	}{
		{"Decimal Price", "75.00", "75", false},
		{"Padded Price", " 12.5 ", "12.5", false},
		{"Blank Price Is Zero", "", "0", false},
		{"Currency Symbol Is Rejected", "$50", "0", true},
		{"Word Is Rejected", "Free", "0", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			price, err := parsePrice(tc.raw)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.True(t, decimal.RequireFromString(tc.expected).Equal(price), "got %s", price)
		})
	}
}

func TestMapAppointmentType(t *testing.T) {
	t.Run("Provider Fields Are Kept Verbatim", func(t *testing.T) {
		item := acuity_dto.AppointmentType{ID: 4, Name: "Dental Cleaning", Category: "Dental", Color: "teal", Duration: 60, CalendarIDs: []int{3}}

		mapped := mapAppointmentType(item, decimal.NewFromInt(90))

		assert.Equal(t, "teal", mapped.ColorHex)
		assert.Equal(t, "Dental", mapped.Category)
		assert.Equal(t, 60, mapped.DurationMinutes)
		assert.Equal(t, []int{3}, mapped.CalendarIDs)
		assert.True(t, decimal.NewFromInt(90).Equal(mapped.Price))
	})

	t.Run("Missing Calendars Become Empty", func(t *testing.T) {
		mapped := mapAppointmentType(acuity_dto.AppointmentType{ID: 5}, decimal.Zero)
		assert.NotNil(t, mapped.CalendarIDs)
		assert.Empty(t, mapped.CalendarIDs)
	})
}
