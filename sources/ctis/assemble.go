package ctis

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"trial-hand/models"
	"trial-hand/sources"
)

const (
	// Marker für Zeilen ohne verwertbaren Titel
	unknownTitle = "Unknown"

	conditionVocabulary = "MedDRA"
	roleSponsor         = "sponsor"
	featurePhase        = "phase"

	registryPageURL = "https://euclinicaltrials.eu/ctis-public/view/%s"
)

// assemble baut aus einer akzeptierten Zeile den kompletten kanonischen
// Datensatz samt abhängiger Entitäten. Die Feldreihenfolge folgt dem Layout
// des Exports; Fehler einzelner Felder lassen nur das jeweilige Attribut
// ungesetzt.
func (s *session) assemble(row sources.Row, base string, suffix int) *models.Study {
	log := s.log.With(zap.String("trial_id", base))

	study := &models.Study{SID: base, Resubmission: suffix}

	title := row.Value(colTitle)
	if sources.IsBlank(title) {
		title = unknownTitle
	}
	study.DisplayTitle = title

	study.Status = row.Value(colStatus)
	study.StartDate = parseDateField(log, row.Value(colStartDate), "start date")
	study.EndDate = parseDateField(log, row.Value(colEndDate), "end date")
	study.Enrollment = row.Value(colEnrollment)

	if gender := row.Value(colGender); !sources.IsBlank(gender) {
		study.Gender = sources.TitleWords(gender)
	}

	s.parseAges(log, study, row.Value(colAgeSecondaryID), row.Value(colAgeGroup))

	study.PrimaryOutcome = row.Value(colPrimaryEndpoint)
	study.SecondaryOutcome = row.Value(colSecondaryEndpoint)
	appendDescription(study, row.Value(colProduct))
	appendDescription(study, row.Value(colPrimaryEndpoint))

	s.addIdentifiers(study, row)
	s.addDataObjects(study, row)
	s.addCountries(log, study, row.Value(colCountries))
	s.addConditions(study, row.Value(colConditions))
	s.addTopics(log, study, row.Value(colTopics))
	s.addPhase(log, study, row.Value(colPhase))
	s.addSponsors(log, study, row.Value(colSponsors), row.Value(colSponsorTypes))

	return study
}

// parseDateField liest ein Datumsfeld; unlesbare Werte werden geloggt und
// lassen das Attribut ungesetzt.
func parseDateField(log *zap.Logger, raw, field string) *time.Time {
	if sources.Absent(raw) {
		return nil
	}
	parsed, ok := sources.ParseDate(raw)
	if !ok {
		log.Warn("Datumsfeld nicht lesbar", zap.String("field", field), zap.String("value", raw))
		return nil
	}
	return &parsed
}

// appendDescription hängt ein Freitext-Fragment als eigene Zeile an die
// Beschreibung an. Leere Fragmente werden übersprungen.
func appendDescription(study *models.Study, fragment string) {
	if sources.IsBlank(fragment) {
		return
	}
	if study.BriefDescription == "" {
		study.BriefDescription = fragment
		return
	}
	study.BriefDescription += "\n" + fragment
}

// addIdentifiers erzeugt die Kennungen der Studie: die EUCT-Nummer selbst und,
// falls vorhanden, den Sponsor-Protokollcode mit Bezug zum federführenden Sponsor.
func (s *session) addIdentifiers(study *models.Study, row sources.Row) {
	study.Identifiers = append(study.Identifiers, models.Identifier{
		Value: study.SID,
		Type:  "EU CT number",
	})

	code := row.Value(colProtocolCode)
	if sources.Absent(code) {
		return
	}
	ident := models.Identifier{Value: code, Type: "Sponsor protocol code"}
	if names := splitList(row.Value(colSponsors)); len(names) > 0 {
		ident.Link = names[0]
	}
	study.Identifiers = append(study.Identifiers, ident)
}

// addDataObjects erzeugt den Registry-Eintrag mit Fundstelle und Daten sowie,
// wenn ein Entscheidungsdatum vorliegt, die Ethik-Genehmigungsnotiz.
func (s *session) addDataObjects(study *models.Study, row sources.Row) {
	decision := row.Value(colDecisionDate)
	updated := row.Value(colLastUpdated)

	entry := models.DataObject{
		Title: "CTIS registry entry",
		Class: "Text",
		Type:  "Trial registry entry",
		Instances: []models.ObjectInstance{
			{URL: fmt.Sprintf(registryPageURL, study.SID)},
		},
	}
	if !sources.Absent(decision) {
		entry.Dates = append(entry.Dates, models.ObjectDate{Type: "Decision", Date: decision})
	}
	if !sources.Absent(updated) {
		entry.Dates = append(entry.Dates, models.ObjectDate{Type: "Last revised", Date: updated})
	}
	study.DataObjects = append(study.DataObjects, entry)

	if !sources.Absent(decision) {
		study.DataObjects = append(study.DataObjects, models.DataObject{
			Title: "CTIS ethics approval notification",
			Class: "Text",
			Type:  "Ethics approval notification",
			Dates: []models.ObjectDate{{Type: "Issued", Date: decision}},
		})
	}
}

// addConditions übernimmt die Indikationen im Originalwortlaut, annotiert mit
// dem erwarteten Vokabular.
func (s *session) addConditions(study *models.Study, raw string) {
	if sources.Absent(raw) {
		return
	}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		study.Conditions = append(study.Conditions, models.Condition{
			Value:      part,
			Vocabulary: conditionVocabulary,
		})
	}
}

// splitList zerlegt eine ", "-separierte Aufzählung und trimmt die Einträge.
func splitList(raw string) []string {
	if sources.IsBlank(raw) {
		return nil
	}
	parts := strings.Split(raw, ", ")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
