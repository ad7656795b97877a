package fixture

import (
	"time"

	"civic/internal/domain/service"
)

const (
	day = 24 * time.Hour

	listingStartSpread = 90 * day
	eventEndMin        = 12 * day
	eventEndMax        = 36 * day
	eventLengthMinHrs  = 1
	eventLengthMaxHrs  = 10
)

// ListingWindow draws a start within 90 days of now and an end between the start and the
// listing horizon. The end never precedes the start.
func (g *Generator) ListingWindow() service.ListingWindow {
	now := g.now()
	start := g.between(now.Add(-listingStartSpread), now.Add(listingStartSpread))

	bound := now.Add(g.listingHorizon)
	end := start
	if bound.After(start) {
		end = g.between(start, bound)
	}

	return service.ListingWindow{Start: start, End: end}
}

// EventWindow keeps the listing start but moves the end 12 to 36 days into the future.
// The event starts 1 to 10 hours before it ends. The listing start is left as drawn and may
// fall after the end.
func (g *Generator) EventWindow() service.EventWindow {
	listing := g.ListingWindow()

	now := g.now()
	listing.End = g.between(now.Add(eventEndMin), now.Add(eventEndMax))
	lead := time.Duration(g.IntRange(eventLengthMinHrs, eventLengthMaxHrs)) * time.Hour

	return service.EventWindow{
		ListingWindow: listing,
		EventStart:    listing.End.Add(-lead),
	}
}

// between returns a uniform instant in [lo, hi], truncated to the second.
func (g *Generator) between(lo, hi time.Time) time.Time {
	if !hi.After(lo) {
		return lo
	}

	return clampSecond(g.faker.DateRange(lo, hi).In(lo.Location()), lo, hi)
}

func clampSecond(t, lo, hi time.Time) time.Time {
	truncated := t.Truncate(time.Second)
	if truncated.Before(lo) {
		return lo
	}
	if truncated.After(hi) {
		return hi
	}

	return truncated
}
