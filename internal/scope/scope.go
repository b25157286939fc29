// Package scope maps a requested geographic scope onto a post store
// predicate. Missing location data never fails a request: the resolver falls
// back to the unfiltered (world) predicate instead, because upstream location
// detection is best-effort and a post must always be scorable.
package scope

import "github.com/lohithsurisetti-dev/onlyOne.today-sub002/pkg/models"

// Predicate is the store-side filter derived from a scope selector. All-nil
// means unfiltered: count across everything.
type Predicate struct {
	City    *string
	State   *string
	Country *string
}

// Unfiltered reports whether the predicate applies no location filter.
func (p Predicate) Unfiltered() bool {
	return p.City == nil && p.State == nil && p.Country == nil
}

// ResolvePredicate decides which filter a scope selector translates to.
// World scope, an unknown scope, or a scope whose required location field is
// absent all resolve to the unfiltered predicate.
func ResolvePredicate(sel models.ScopeSelector) Predicate {
	switch sel.Scope {
	case models.ScopeCity:
		if sel.Location.City != "" {
			city := sel.Location.City
			return Predicate{City: &city}
		}
	case models.ScopeState:
		if sel.Location.State != "" {
			state := sel.Location.State
			return Predicate{State: &state}
		}
	case models.ScopeCountry:
		if sel.Location.Country != "" {
			country := sel.Location.Country
			return Predicate{Country: &country}
		}
	}
	return Predicate{}
}
