package models

// Identifier ist eine weitere Kennung einer Studie, z.B. der Sponsor-Protokollcode.
type Identifier struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	StudyID uint   `json:"study_id" gorm:"index;not null"`
	Value   string `json:"value"`
	Type    string `json:"type"`
	// Optionaler Bezug der Kennung, z.B. die vergebende Organisation
	Link string `json:"link,omitempty"`
}

// TableName gibt explizit den Tabellennamen an.
func (Identifier) TableName() string {
	return "study_identifiers"
}
