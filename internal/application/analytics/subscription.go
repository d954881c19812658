package analytics

import (
	"time"

	"github.com/diillson/billing-dashboard-go/internal/domain/entity"
)

type period struct {
	start *time.Time
	end   *time.Time
}

// overlaps reports whether the period intersects [from, to]. A missing start
// or end leaves that side unbounded.
func (p period) overlaps(from, to time.Time) bool {
	if p.start != nil && p.start.After(to) {
		return false
	}
	if p.end != nil && p.end.Before(from) {
		return false
	}
	return true
}

// SubscriptionCounts counts the distinct subscriptions of the window and
// splits them into active and canceled relative to the latest created_at.
//
// A subscription's effective end is open when any of its rows is open-ended,
// otherwise the latest observed end. It is active when that end is open or
// after the reference instant and canceled otherwise, so every subscription
// lands in exactly one bucket.
func SubscriptionCounts(table entity.Table) entity.SubscriptionCounts {
	_, reference, ok := table.CreatedAtBounds()
	if !ok {
		return entity.SubscriptionCounts{}
	}

	type state struct {
		open bool
		end  time.Time
	}
	subs := make(map[string]*state)
	table.Each(func(r entity.LineItemRecord) {
		if !r.IsRecurring() {
			return
		}
		s, found := subs[r.SubscriptionID]
		if !found {
			s = &state{}
			subs[r.SubscriptionID] = s
		}
		if r.SubscriptionPeriodEndedAt == nil {
			s.open = true
			return
		}
		if r.SubscriptionPeriodEndedAt.After(s.end) {
			s.end = *r.SubscriptionPeriodEndedAt
		}
	})

	counts := entity.SubscriptionCounts{Total: len(subs)}
	for _, s := range subs {
		if s.open || s.end.After(reference) {
			counts.Active++
		} else {
			counts.Canceled++
		}
	}
	return counts
}

// ActiveSubscriptionsOverTime counts, for every month between the first and
// last created_at of the window, the distinct subscriptions whose period
// overlaps that month.
func ActiveSubscriptionsOverTime(table entity.Table) []entity.MonthlyValue {
	first, last, ok := table.CreatedAtBounds()
	if !ok {
		return []entity.MonthlyValue{}
	}

	periods := make(map[string][]period)
	table.Each(func(r entity.LineItemRecord) {
		if !r.IsRecurring() {
			return
		}
		periods[r.SubscriptionID] = append(periods[r.SubscriptionID], period{
			start: r.SubscriptionPeriodStartedAt,
			end:   r.SubscriptionPeriodEndedAt,
		})
	})

	counts := make(map[string]float64)
	for _, m := range months(first, last) {
		from, to := m, monthEnd(m)
		var active int
		for _, ps := range periods {
			for _, p := range ps {
				if p.overlaps(from, to) {
					active++
					break
				}
			}
		}
		counts[m.Format(entity.MonthLayout)] = float64(active)
	}

	return DenseMonthlySeries(counts, first, last)
}
