//go:build unit

package offer_test

import (
	"testing"
	"time"

	"savoria-api/internal/domain/offer"
	"savoria-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// Tuesday 2025-06-10 18:30 local.
var tuesdayEvening = time.Date(2025, 6, 10, 18, 30, 0, 0, time.UTC)

func TestIsValid_ActiveFlag(t *testing.T) {
	o := builder.NewOfferBuilder().Build()
	assert.True(t, offer.IsValid(o, tuesdayEvening, nil))

	inactive := builder.NewOfferBuilder().Inactive().Build()
	assert.False(t, offer.IsValid(inactive, tuesdayEvening, nil))
}

func TestIsValid_InactiveBeatsEverything(t *testing.T) {
	// Every other rule passes; the flag alone must reject.
	o := builder.NewOfferBuilder().
		WithWindow("17:00", "19:00").
		WithValidDays(time.Tuesday).
		Inactive().
		Build()
	assert.False(t, offer.IsValid(o, tuesdayEvening, nil))
}

func TestIsValid_DateBounds(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{
			name:  "inside range",
			start: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
			want:  true,
		},
		{
			name:  "starts today",
			start: time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC),
			end:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
			want:  true,
		},
		{
			name:  "ends today",
			start: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
			want:  true,
		},
		{
			name:  "not started yet",
			start: time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
			want:  false,
		},
		{
			name:  "already ended",
			start: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := builder.NewOfferBuilder().WithDateRange(tt.start, tt.end).Build()
			assert.Equal(t, tt.want, offer.IsValid(o, tuesdayEvening, nil))
		})
	}
}

func TestIsValid_DateBoundsCompareAtDateGranularity(t *testing.T) {
	// End date carries a time-of-day earlier than now; the whole end day
	// still counts.
	end := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	o := builder.NewOfferBuilder().
		WithDateRange(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), end).
		Build()
	assert.True(t, offer.IsValid(o, tuesdayEvening, nil))
}

func TestIsValid_DateBoundsAcrossZones(t *testing.T) {
	// Bounds are stored as UTC-midnight dates; the clock may run in any
	// zone. Each side compares by its own wall-clock date.
	utcStart := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	utcEnd := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	// Morning of June 10 in Sydney is still June 9 in UTC; the offer
	// starting June 10 is already live there.
	sydney := time.FixedZone("UTC+10", 10*60*60)
	morningAhead := time.Date(2025, 6, 10, 8, 0, 0, 0, sydney)
	starting := builder.NewOfferBuilder().WithDateRange(utcStart, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)).Build()
	assert.True(t, offer.IsValid(starting, morningAhead, nil))

	// Evening of June 10 in Denver is already June 11 in UTC; the offer
	// ending June 10 still covers it.
	denver := time.FixedZone("UTC-7", -7*60*60)
	eveningBehind := time.Date(2025, 6, 10, 20, 0, 0, 0, denver)
	ending := builder.NewOfferBuilder().WithDateRange(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), utcEnd).Build()
	assert.True(t, offer.IsValid(ending, eveningBehind, nil))

	// The day before in local terms stays out even when UTC has reached
	// the start date.
	dayBefore := time.Date(2025, 6, 9, 23, 0, 0, 0, denver)
	assert.False(t, offer.IsValid(starting, dayBefore, nil))
}

func TestIsValid_Weekdays(t *testing.T) {
	matching := builder.NewOfferBuilder().WithValidDays(time.Monday, time.Tuesday).Build()
	assert.True(t, offer.IsValid(matching, tuesdayEvening, nil))

	other := builder.NewOfferBuilder().WithValidDays(time.Saturday, time.Sunday).Build()
	assert.False(t, offer.IsValid(other, tuesdayEvening, nil))

	// Empty set means every day.
	unrestricted := builder.NewOfferBuilder().Build()
	assert.True(t, offer.IsValid(unrestricted, tuesdayEvening, nil))
}

func TestIsValid_TimeWindow(t *testing.T) {
	at := func(hour, minute int) time.Time {
		return time.Date(2025, 6, 10, hour, minute, 0, 0, time.UTC)
	}
	o := builder.NewOfferBuilder().WithWindow("17:00", "19:00").Build()

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"one minute before opening", at(16, 59), false},
		{"opening minute", at(17, 0), true},
		{"mid window", at(18, 15), true},
		{"closing minute", at(19, 0), true},
		{"one minute after closing", at(19, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, offer.IsValid(o, tt.now, nil))
		})
	}
}

func TestIsValid_TimeWindowRequiresBothEnds(t *testing.T) {
	// A half-configured window does not gate at all.
	startOnly := builder.NewOfferBuilder().WithWindow("17:00", "").Build()
	assert.True(t, offer.IsValid(startOnly, tuesdayEvening, nil))

	endOnly := builder.NewOfferBuilder().WithWindow("", "12:00").Build()
	assert.True(t, offer.IsValid(endOnly, tuesdayEvening, nil))
}

func TestIsValid_Birthday(t *testing.T) {
	o := builder.NewOfferBuilder().WithType(offer.TypeBirthday).Build()

	birthday := time.Date(1990, 6, 10, 0, 0, 0, 0, time.UTC)
	otherDay := time.Date(1990, 12, 25, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		profile *offer.Profile
		want    bool
	}{
		{"matching month and day", &offer.Profile{DateOfBirth: &birthday}, true},
		{"different day", &offer.Profile{DateOfBirth: &otherDay}, false},
		{"profile without date of birth", &offer.Profile{}, false},
		{"no profile", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, offer.IsValid(o, tuesdayEvening, tt.profile))
		})
	}
}

func TestIsValid_Anniversary(t *testing.T) {
	o := builder.NewOfferBuilder().WithType(offer.TypeAnniversary).Build()

	anniversary := time.Date(2015, 6, 10, 0, 0, 0, 0, time.UTC)
	assert.True(t, offer.IsValid(o, tuesdayEvening, &offer.Profile{AnniversaryDate: &anniversary}))
	assert.False(t, offer.IsValid(o, tuesdayEvening, &offer.Profile{}))
	assert.False(t, offer.IsValid(o, tuesdayEvening, nil))
}

func TestAppliesToItem(t *testing.T) {
	item := builder.NewMenuItemBuilder().Build()
	categorised := builder.NewMenuItemBuilder().Build()
	category := uuid.New()
	categorised.CategoryID = &category

	t.Run("all scope matches any item", func(t *testing.T) {
		o := builder.NewOfferBuilder().Build()
		assert.True(t, offer.AppliesToItem(o, item))
		assert.True(t, offer.AppliesToItem(o, categorised))
	})

	t.Run("item scope matches only the named item", func(t *testing.T) {
		o := builder.NewOfferBuilder().WithItemScope(item.ID).Build()
		assert.True(t, offer.AppliesToItem(o, item))
		assert.False(t, offer.AppliesToItem(o, categorised))
	})

	t.Run("item scope without target never matches", func(t *testing.T) {
		o := builder.NewOfferBuilder().Build()
		o.Scope = offer.ScopeItem
		o.ItemID = nil
		assert.False(t, offer.AppliesToItem(o, item))
	})

	t.Run("category scope matches items in the category", func(t *testing.T) {
		o := builder.NewOfferBuilder().WithCategoryScope(category).Build()
		assert.True(t, offer.AppliesToItem(o, categorised))
		assert.False(t, offer.AppliesToItem(o, item))
	})

	t.Run("category scope rejects uncategorised items", func(t *testing.T) {
		o := builder.NewOfferBuilder().WithCategoryScope(category).Build()
		assert.False(t, offer.AppliesToItem(o, item))
	})
}
