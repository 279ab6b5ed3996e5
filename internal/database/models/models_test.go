package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
}

func TestSavedSearchIsDue(t *testing.T) {
	t.Run("daily is always due", func(t *testing.T) {
		s := &SavedSearch{IsActive: true, Frequency: FrequencyDaily}
		assert.True(t, s.IsDue(day(2024, time.March, 5)))
	})

	t.Run("weekly matches iso weekday", func(t *testing.T) {
		// 2024-03-04 is a Monday, 2024-03-10 a Sunday
		s := &SavedSearch{IsActive: true, Frequency: FrequencyWeekly, DayOfWeek: 1}
		assert.True(t, s.IsDue(day(2024, time.March, 4)))
		assert.False(t, s.IsDue(day(2024, time.March, 5)))

		s.DayOfWeek = 7
		assert.True(t, s.IsDue(day(2024, time.March, 10)))
	})

	t.Run("monthly matches day of month", func(t *testing.T) {
		s := &SavedSearch{IsActive: true, Frequency: FrequencyMonthly, DayOfMonth: 15}
		assert.True(t, s.IsDue(day(2024, time.March, 15)))
		assert.False(t, s.IsDue(day(2024, time.March, 16)))
	})

	t.Run("monthly falls back to last day of short month", func(t *testing.T) {
		s := &SavedSearch{IsActive: true, Frequency: FrequencyMonthly, DayOfMonth: 31}
		assert.True(t, s.IsDue(day(2024, time.February, 29)))
		assert.False(t, s.IsDue(day(2024, time.February, 28)))
		assert.True(t, s.IsDue(day(2023, time.February, 28)))
		assert.True(t, s.IsDue(day(2024, time.April, 30)))
	})

	t.Run("never twice on the same date", func(t *testing.T) {
		sent := time.Date(2024, time.March, 5, 6, 0, 0, 0, time.UTC)
		s := &SavedSearch{IsActive: true, Frequency: FrequencyDaily, LastSent: &sent}
		assert.False(t, s.IsDue(day(2024, time.March, 5)))
		assert.True(t, s.IsDue(day(2024, time.March, 6)))
	})

	t.Run("inactive or unsubscribed is never due", func(t *testing.T) {
		s := &SavedSearch{IsActive: false, Frequency: FrequencyDaily}
		assert.False(t, s.IsDue(day(2024, time.March, 5)))

		s = &SavedSearch{IsActive: true, Unsubscribed: true, Frequency: FrequencyDaily}
		assert.False(t, s.IsDue(day(2024, time.March, 5)))
	})
}

func TestPurchaseIsExpired(t *testing.T) {
	p := &Purchase{ExpirationDate: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)}
	assert.False(t, p.IsExpired(time.Date(2024, time.March, 5, 23, 0, 0, 0, time.UTC)))
	assert.True(t, p.IsExpired(time.Date(2024, time.March, 6, 0, 1, 0, 0, time.UTC)))
}

func TestContactTypeRules(t *testing.T) {
	assert.True(t, ContactTypeMeetingOrEvent.IsValid())
	assert.False(t, ContactType("fax").IsValid())
	assert.True(t, ContactTypePhone.HasLength())
	assert.False(t, ContactTypeEmail.HasLength())
}

func TestSeoSiteBUIDs(t *testing.T) {
	site := &SeoSite{BusinessUnits: []BusinessUnit{{ID: 10}, {ID: 12}}}
	assert.Equal(t, []int{10, 12}, site.BUIDs())
}
