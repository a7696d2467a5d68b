package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gescon/internal/domain"
)

func TestDate_UnmarshalJSON_DateOnly(t *testing.T) {
	var d domain.Date
	err := json.Unmarshal([]byte(`"2026-01-15"`), &d)

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), d.Time)
}

func TestDate_UnmarshalJSON_RFC3339(t *testing.T) {
	var d domain.Date
	err := json.Unmarshal([]byte(`"2026-01-15T10:30:00Z"`), &d)

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC), d.Time)
}

func TestDate_UnmarshalJSON_Fail_EmptyString(t *testing.T) {
	var d domain.Date
	err := json.Unmarshal([]byte(`""`), &d)

	// Campo presente sem valor de data não vira data zero.
	assert.Error(t, err)
	assert.True(t, d.Time.IsZero())
}

func TestDate_UnmarshalJSON_Fail_OtherFormat(t *testing.T) {
	var d domain.Date
	err := json.Unmarshal([]byte(`"15/01/2026"`), &d)

	assert.Error(t, err)
}

func TestDate_MarshalJSON_CanonicalFormat(t *testing.T) {
	d := domain.NewDate(time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC))
	out, err := json.Marshal(d)

	assert.NoError(t, err)
	assert.Equal(t, `"2026-01-15"`, string(out))
}

func TestDate_InsideStruct(t *testing.T) {
	var payload struct {
		StartDate *domain.Date `json:"startDate"`
		EndDate   *domain.Date `json:"endDate"`
	}
	err := json.Unmarshal([]byte(`{"startDate":"2026-01-15"}`), &payload)

	assert.NoError(t, err)
	assert.NotNil(t, payload.StartDate)
	assert.Nil(t, payload.EndDate)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), payload.StartDate.Time)
}
