package models

// CountryStatus ist ein Land/Rekrutierungsstatus-Paar einer Studie.
type CountryStatus struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	StudyID uint   `json:"study_id" gorm:"index;not null"`
	Country string `json:"country"`
	Status  string `json:"status"`
}

// TableName gibt explizit den Tabellennamen an.
func (CountryStatus) TableName() string {
	return "country_statuses"
}

// Condition ist eine medizinische Indikation im Originalwortlaut. Vocabulary
// benennt das Vokabular, dem der Text erwartungsgemäß angehört; es findet
// kein Mapping statt.
type Condition struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	StudyID    uint   `json:"study_id" gorm:"index;not null"`
	Value      string `json:"value" gorm:"type:text"`
	Vocabulary string `json:"vocabulary"`
}

// TableName gibt explizit den Tabellennamen an.
func (Condition) TableName() string {
	return "study_conditions"
}

// Topic ist ein Therapiegebiet mit Vokabular und Vokabular-Code.
type Topic struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	StudyID    uint   `json:"study_id" gorm:"index;not null"`
	Value      string `json:"value"`
	Vocabulary string `json:"vocabulary"`
	Code       string `json:"code" gorm:"index"`
}

// TableName gibt explizit den Tabellennamen an.
func (Topic) TableName() string {
	return "study_topics"
}

// Feature ist ein typisiertes Merkmal einer Studie, z.B. die Studienphase.
type Feature struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	StudyID uint   `json:"study_id" gorm:"index;not null"`
	Type    string `json:"type"`
	Value   string `json:"value"`
}

// TableName gibt explizit den Tabellennamen an.
func (Feature) TableName() string {
	return "study_features"
}

// Organisation ist eine an der Studie beteiligte Organisation (Sponsor).
type Organisation struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	StudyID uint   `json:"study_id" gorm:"index;not null"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Type    string `json:"type,omitempty"`
}

// TableName gibt explizit den Tabellennamen an.
func (Organisation) TableName() string {
	return "study_organisations"
}
