package listings

import "github.com/justestif/go-fyyur/internal/db"

// VenueRef identifies a venue inside an Area.
type VenueRef struct {
	ID   int64
	Name string
}

// Area is a run of venues sharing a city and state.
type Area struct {
	City   string
	State  string
	Venues []VenueRef
}

// GroupByLocation folds venues into areas in a single pass. A venue joins the
// last area when its city and state equal that area's; otherwise it starts a
// new one. Only adjacent venues are merged, so the input must be sorted by
// (state, city) to get exactly one area per location.
func GroupByLocation(venues []db.VenueLocation) []Area {
	areas := []Area{}
	for _, v := range venues {
		ref := VenueRef{ID: v.ID, Name: v.Name}
		if n := len(areas); n > 0 {
			last := &areas[n-1]
			if last.City == v.City && last.State == v.State {
				last.Venues = append(last.Venues, ref)
				continue
			}
		}
		areas = append(areas, Area{
			City:   v.City,
			State:  v.State,
			Venues: []VenueRef{ref},
		})
	}
	return areas
}
