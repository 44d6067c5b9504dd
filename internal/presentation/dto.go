package presentation

import (
	"github.com/zjrosen/restodesk/internal/config"
	"github.com/zjrosen/restodesk/internal/masters"
	"github.com/zjrosen/restodesk/internal/screens"
)

// ScreenDTO describes one registered screen.
type ScreenDTO struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Scope     string `json:"scope"`
	Hidden    bool   `json:"hidden"`
	Available bool   `json:"available"`
	// Reason says why the screen is unavailable.
	Reason string `json:"reason,omitempty"`
	Sort   string `json:"sort,omitempty"`
}

// PageDTO is one headless listing.
type PageDTO struct {
	Screen      string     `json:"screen"`
	Term        string     `json:"term,omitempty"`
	Sort        string     `json:"sort,omitempty"`
	Page        int        `json:"page"`
	TotalPages  int        `json:"total_pages"`
	Total       int        `json:"total"`
	SourceTotal int        `json:"source_total"`
	Headers     []string   `json:"headers"`
	Rows        [][]string `json:"rows"`
}

// ScopeName is the config-facing name of a scope.
func ScopeName(s masters.Scope) string {
	switch s {
	case masters.ScopeHotel:
		return "hotel"
	case masters.ScopeCompanyYear:
		return "company-year"
	default:
		return "none"
	}
}

// FromEntries describes entries as seen by session under cfg.
func FromEntries(entries []screens.Entry, session masters.Session, cfg config.Config) []ScreenDTO {
	out := make([]ScreenDTO, 0, len(entries))
	for _, e := range entries {
		sc := cfg.Screen(e.Name)
		dto := ScreenDTO{
			Name:      e.Name,
			Title:     e.Title,
			Scope:     ScopeName(e.Scope),
			Hidden:    sc.Hidden,
			Available: true,
			Sort:      sc.Sort,
		}
		if err := e.Available(session); err != nil {
			dto.Available = false
			dto.Reason = err.Error()
		}
		out = append(out, dto)
	}
	return out
}

// FromResult converts a headless listing.
func FromResult(screen, term string, r screens.Result) PageDTO {
	rows := r.Table.Rows
	if rows == nil {
		rows = [][]string{}
	}
	return PageDTO{
		Screen:      screen,
		Term:        term,
		Sort:        config.FormatSort(r.Sort),
		Page:        r.Page,
		TotalPages:  r.TotalPages,
		Total:       r.Total,
		SourceTotal: r.SourceTotal,
		Headers:     r.Table.Headers,
		Rows:        rows,
	}
}
