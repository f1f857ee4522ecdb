package domain

import (
	"fmt"
	"time"
)

type Project struct {
	ID           string
	Name         string
	BusinessLine string
	StartDate    time.Time
	Status       ProjectStatus
	ArchivedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks the fields required before a project can be persisted.
func (p *Project) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	if p.StartDate.IsZero() {
		return fmt.Errorf("project start date is required")
	}
	return nil
}

// MonthsElapsed returns the number of whole months between the project
// start date and now, with a minimum of 1. Used as the burn-rate divisor.
func (p *Project) MonthsElapsed(now time.Time) int {
	if now.Before(p.StartDate) {
		return 1
	}
	years := now.Year() - p.StartDate.Year()
	months := int(now.Month()) - int(p.StartDate.Month())
	total := years*12 + months
	if now.Day() < p.StartDate.Day() {
		total--
	}
	if total < 1 {
		return 1
	}
	return total
}

// DisplayID returns a short identifier for display, truncating the UUID.
func (p *Project) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
