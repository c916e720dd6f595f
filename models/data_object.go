package models

// DataObject ist ein typisiertes Artefakt einer Studie, z.B. der Registry-Eintrag
// oder die Ethik-Genehmigung. Daten und Fundstellen hängen als Kinder am Objekt.
type DataObject struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	StudyID uint   `json:"study_id" gorm:"index;not null"`
	Title   string `json:"title"`
	Class   string `json:"class"`
	Type    string `json:"type"`

	Dates     []ObjectDate     `json:"dates,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Instances []ObjectInstance `json:"instances,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// TableName gibt explizit den Tabellennamen an.
func (DataObject) TableName() string {
	return "data_objects"
}

// ObjectDate ist ein typisiertes Datum eines DataObjects (Entscheidung, Aktualisierung, ...).
type ObjectDate struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	DataObjectID uint   `json:"data_object_id" gorm:"index;not null"`
	Type         string `json:"type"`
	Date         string `json:"date"`
}

// TableName gibt explizit den Tabellennamen an.
func (ObjectDate) TableName() string {
	return "object_dates"
}

// ObjectInstance ist eine auflösbare Fundstelle (URL) eines DataObjects.
type ObjectInstance struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	DataObjectID uint   `json:"data_object_id" gorm:"index;not null"`
	URL          string `json:"url" gorm:"type:text"`
}

// TableName gibt explizit den Tabellennamen an.
func (ObjectInstance) TableName() string {
	return "object_instances"
}
