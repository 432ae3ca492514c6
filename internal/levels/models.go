// Package levels manages the per-level configuration records (colors and
// logo asset) that the dashboard edits. Levels are numbered 1 through 10.
package levels

import (
	"fmt"
	"time"

	dErrors "dotback/pkg/domain-errors"
)

// MinLevel and MaxLevel bound the level numbers the game recognizes.
const (
	MinLevel = 1
	MaxLevel = 10
)

// Level is a single level's configuration record. The level number is unique
// across all records.
type Level struct {
	ID              string    `bson:"_id,omitempty" json:"-"`
	Number          int       `bson:"level" json:"level"`
	BackgroundColor string    `bson:"backgroundColor" json:"backgroundColor"`
	Dot1Color       string    `bson:"dot1Color" json:"dot1Color"`
	Dot2Color       string    `bson:"dot2Color" json:"dot2Color"`
	Dot3Color       string    `bson:"dot3Color" json:"dot3Color"`
	Dot4Color       string    `bson:"dot4Color" json:"dot4Color"`
	Dot5Color       string    `bson:"dot5Color" json:"dot5Color"`
	LogoURL         string    `bson:"logoUrl" json:"logoUrl"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ConfigPayload is the request body for creating or updating a level. The
// color fields are all required; logoUrl may be empty to clear the logo.
type ConfigPayload struct {
	Number          int    `json:"level"`
	BackgroundColor string `json:"backgroundColor"`
	Dot1Color       string `json:"dot1Color"`
	Dot2Color       string `json:"dot2Color"`
	Dot3Color       string `json:"dot3Color"`
	Dot4Color       string `json:"dot4Color"`
	Dot5Color       string `json:"dot5Color"`
	LogoURL         string `json:"logoUrl"`
}

// ValidateColors checks the six required color fields and reports the first
// missing one, matching the dashboard's per-field error display.
func (p *ConfigPayload) ValidateColors() error {
	fields := []struct {
		name  string
		value string
	}{
		{"backgroundColor", p.BackgroundColor},
		{"dot1Color", p.Dot1Color},
		{"dot2Color", p.Dot2Color},
		{"dot3Color", p.Dot3Color},
		{"dot4Color", p.Dot4Color},
		{"dot5Color", p.Dot5Color},
	}
	for _, f := range fields {
		if f.value == "" {
			return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("Field %s is required.", f.name))
		}
	}
	return nil
}

// ValidateNumber checks the level number bounds.
func (p *ConfigPayload) ValidateNumber() error {
	if p.Number < MinLevel || p.Number > MaxLevel {
		return dErrors.New(dErrors.CodeValidation, "Invalid level.")
	}
	return nil
}

// Apply copies the payload fields onto a level record.
func (p *ConfigPayload) Apply(level *Level) {
	level.BackgroundColor = p.BackgroundColor
	level.Dot1Color = p.Dot1Color
	level.Dot2Color = p.Dot2Color
	level.Dot3Color = p.Dot3Color
	level.Dot4Color = p.Dot4Color
	level.Dot5Color = p.Dot5Color
	level.LogoURL = p.LogoURL
}
