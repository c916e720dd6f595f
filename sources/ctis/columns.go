package ctis

import (
	"strings"

	"trial-hand/sources"
)

// Spaltennamen des öffentlichen CTIS-CSV-Exports. Der Zugriff erfolgt immer
// über den Namen, nie über die Position.
const (
	colTrialNumber       = "Trial number"
	colTitle             = "Title of the trial"
	colProtocolCode      = "Protocol code"
	colStatus            = "Overall trial status"
	colStartDate         = "Start date"
	colEndDate           = "End of trial date"
	colEnrollment        = "Estimated recruitment"
	colGender            = "Gender"
	colAgeSecondaryID    = "Age range secondary identifier"
	colAgeGroup          = "Age group"
	colPhase             = "Trial phase"
	colCountries         = "Countries and recruitment status"
	colConditions        = "Medical conditions"
	colTopics            = "Therapeutic areas"
	colSponsors          = "Sponsor/Co-Sponsors"
	colSponsorTypes      = "Sponsor type"
	colProduct           = "Product"
	colPrimaryEndpoint   = "Primary end point"
	colSecondaryEndpoint = "Secondary end point"
	colDecisionDate      = "Decision date"
	colLastUpdated       = "Last updated"
)

// requiredColumns sind alle Spalten, die der Konverter liest. Sie werden beim
// Einlesen der Kopfzeile geprüft.
var requiredColumns = []string{
	colTrialNumber,
	colTitle,
	colProtocolCode,
	colStatus,
	colStartDate,
	colEndDate,
	colEnrollment,
	colGender,
	colAgeSecondaryID,
	colAgeGroup,
	colPhase,
	colCountries,
	colConditions,
	colTopics,
	colSponsors,
	colSponsorTypes,
	colProduct,
	colPrimaryEndpoint,
	colSecondaryEndpoint,
	colDecisionDate,
	colLastUpdated,
}

// cleaner implementiert sources.ValueCleaner für das CTIS-Exportformat.
type cleaner struct{}

// Clean trimmt den Wert, entfernt umschließende Anführungszeichen und löst
// HTML-Entities auf.
func (cleaner) Clean(raw string) string {
	s := strings.TrimSpace(raw)
	s = sources.StripQuotes(s)
	s = sources.Unescape(s)
	return strings.TrimSpace(s)
}
