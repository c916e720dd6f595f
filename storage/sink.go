package storage

import (
	"context"

	"gorm.io/gorm"

	"trial-hand/models"
)

// GormSink schreibt Studien in die Postgres-Datenbank. Bestehende Datensätze
// mit gleicher Kennung werden samt abhängiger Entitäten ersetzt.
type GormSink struct {
	DB *gorm.DB
}

func NewGormSink(db *gorm.DB) *GormSink {
	return &GormSink{DB: db}
}

// SaveStudies ersetzt die gelieferten Studien transaktional: erst löschen,
// dann stapelweise neu einfügen. Abhängige Zeilen räumt die Datenbank über
// die ON DELETE CASCADE Constraints ab.
func (s *GormSink) SaveStudies(ctx context.Context, studies []*models.Study) error {
	if len(studies) == 0 {
		return nil
	}

	sids := make([]string, 0, len(studies))
	for _, study := range studies {
		sids = append(sids, study.SID)
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sid IN ?", sids).Delete(&models.Study{}).Error; err != nil {
			return err
		}
		return tx.CreateInBatches(studies, 100).Error
	})
}
