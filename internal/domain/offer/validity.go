package offer

import (
	"time"

	"savoria-api/internal/domain/catalog"
)

const clockLayout = "15:04"

// IsValid reports whether o is live at now, independent of any item.
// Every rule must pass: the active flag, the calendar date bounds, the
// weekday set, the daily HH:MM window, and, for birthday/anniversary
// offers, a month-and-day match against the profile. Missing profile
// data fails closed.
func IsValid(o Offer, now time.Time, p *Profile) bool {
	if !o.Active {
		return false
	}

	if o.StartDate != nil && dateKey(now) < dateKey(*o.StartDate) {
		return false
	}
	if o.EndDate != nil && dateKey(now) > dateKey(*o.EndDate) {
		return false
	}

	if len(o.ValidDays) > 0 && !containsWeekday(o.ValidDays, now.Weekday()) {
		return false
	}

	// Inclusive on both ends. Lexicographic comparison on zero-padded
	// "HH:MM" means a window wrapping past midnight (22:00-02:00) matches
	// nothing; that mirrors the configured behaviour and stays until a
	// product decision says otherwise.
	if o.StartTime != "" && o.EndTime != "" {
		clock := now.Format(clockLayout)
		if clock < o.StartTime || clock > o.EndTime {
			return false
		}
	}

	switch o.Type {
	case TypeBirthday:
		if p == nil || p.DateOfBirth == nil || !sameMonthDay(*p.DateOfBirth, now) {
			return false
		}
	case TypeAnniversary:
		if p == nil || p.AnniversaryDate == nil || !sameMonthDay(*p.AnniversaryDate, now) {
			return false
		}
	}

	return true
}

// AppliesToItem reports whether o's target matches item, independent of
// temporal validity.
func AppliesToItem(o Offer, item catalog.Item) bool {
	switch o.Scope {
	case ScopeAll:
		return true
	case ScopeItem:
		return o.ItemID != nil && *o.ItemID == item.ID
	case ScopeCategory:
		return o.CategoryID != nil && item.CategoryID != nil && *o.CategoryID == *item.CategoryID
	default:
		return false
	}
}

// dateKey collapses t to its calendar date in t's own location. Bounds are
// plain dates, so each side reads its wall-clock date; comparing truncated
// instants instead would shift a bound by a day whenever the offer dates
// and the clock carry different zones.
func dateKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}

func sameMonthDay(a, b time.Time) bool {
	return a.Month() == b.Month() && a.Day() == b.Day()
}

func containsWeekday(days []time.Weekday, d time.Weekday) bool {
	for _, day := range days {
		if day == d {
			return true
		}
	}
	return false
}
