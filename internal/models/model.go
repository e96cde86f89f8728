// Package models implements the budgeting ledger and its persistence.
package models

import (
	"time"

	"github.com/pouchbudget/backend/internal/uuid"
	"gorm.io/gorm"
)

// DefaultModel is the base model for most models in Pouch.
type DefaultModel struct {
	ID uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Timestamps
}

// Timestamps only contains the timestamps that gorm sets automatically to enable other
// primary keys than ID.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt" example:"2022-04-02T19:28:44.491514Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2022-04-17T20:14:01.048145Z"`
}

// AfterFind updates the timestamps to use UTC as
// the timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (m *Timestamps) AfterFind(_ *gorm.DB) error {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)

	return nil
}

// BeforeCreate is set to generate a UUID for the resource.
func (m *DefaultModel) BeforeCreate(_ *gorm.DB) error {
	m.ID = uuid.New()
	return nil
}
