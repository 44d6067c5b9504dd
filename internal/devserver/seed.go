package devserver

import (
	"context"
	"fmt"
)

var seedStates = []struct {
	name   string
	code   string
	cities []string
}{
	{"Maharashtra", "MH", []string{"Mumbai", "Pune", "Nagpur", "Nashik"}},
	{"Goa", "GA", []string{"Panaji", "Margao"}},
	{"Karnataka", "KA", []string{"Bengaluru", "Mysuru"}},
	{"Gujarat", "GJ", []string{"Ahmedabad", "Surat"}},
}

// Seed fills the country, state and city masters when they are empty.
func Seed(ctx context.Context, s *Store) error {
	n, err := s.Count(ctx, "states")
	if err != nil {
		return fmt.Errorf("count states: %w", err)
	}
	if n > 0 {
		return nil
	}
	country, err := s.Create(ctx, "countries", "countryid", "", Document{
		"country_name":    "India",
		"country_code":    "IN",
		"country_capital": "New Delhi",
		"status":          0,
	})
	if err != nil {
		return fmt.Errorf("seed country: %w", err)
	}
	for _, st := range seedStates {
		state, err := s.Create(ctx, "states", "stateid", "", Document{
			"state_name":   st.name,
			"state_code":   st.code,
			"countryid":    country["countryid"],
			"country_name": country["country_name"],
			"status":       0,
		})
		if err != nil {
			return fmt.Errorf("seed state %s: %w", st.name, err)
		}
		for _, city := range st.cities {
			if _, err := s.Create(ctx, "cities", "cityid", "", Document{
				"city_name":  city,
				"stateid":    state["stateid"],
				"state_name": st.name,
				"iscoastal":  0,
				"status":     0,
			}); err != nil {
				return fmt.Errorf("seed city %s: %w", city, err)
			}
		}
	}
	return nil
}
