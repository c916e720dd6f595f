package models

import (
	"time"
)

// Study ist der kanonische, registry-unabhängige Datensatz einer klinischen Studie.
// Alle abhängigen Entitäten gehören exklusiv zu genau einer Study und werden
// zusammen mit ihr geschrieben und gelöscht.
type Study struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Stabiler 14-stelliger Basis-Identifier (EUCT-Nummer ohne Resubmissions-Suffix)
	SID string `json:"sid" gorm:"column:sid;uniqueIndex;size:14;not null"`
	// Resubmissionsnummer der Zeile, aus der dieser Datensatz stammt
	Resubmission int `json:"resubmission"`

	DisplayTitle string     `json:"display_title" gorm:"type:text"`
	Status       string     `json:"status,omitempty" gorm:"index"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Enrollment   string     `json:"enrollment,omitempty"`
	Gender       string     `json:"gender,omitempty"`

	// Altersgrenzen als normalisierte Textwerte; ein leerer Wert bedeutet
	// "keine Grenze bekannt bzw. offen"
	MinAge     string `json:"min_age,omitempty"`
	MinAgeUnit string `json:"min_age_unit,omitempty"`
	MaxAge     string `json:"max_age,omitempty"`
	MaxAgeUnit string `json:"max_age_unit,omitempty"`

	PrimaryOutcome   string `json:"primary_outcome,omitempty" gorm:"type:text"`
	SecondaryOutcome string `json:"secondary_outcome,omitempty" gorm:"type:text"`
	BriefDescription string `json:"brief_description,omitempty" gorm:"type:text"`

	Identifiers   []Identifier    `json:"identifiers,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	DataObjects   []DataObject    `json:"data_objects,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Countries     []CountryStatus `json:"countries,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Conditions    []Condition     `json:"conditions,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Topics        []Topic         `json:"topics,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Features      []Feature       `json:"features,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Organisations []Organisation  `json:"organisations,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// TableName gibt explizit den Tabellennamen an.
func (Study) TableName() string {
	return "studies"
}
