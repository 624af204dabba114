package service

import (
	"fmt"

	"github.com/Aashish23092/cash-receipt-generator/dto"
	"github.com/Aashish23092/cash-receipt-generator/utils"
)

const defaultRouteDesc = "OFC route"

// The double spaces are part of the wording on already signed receipts.
const (
	pitsTemplate = "Paid Charges to %s  and Team Rs %d Towards opening %d nos of Joint pits Pits  and " +
		"Trenching between the joints %s for attending OFC cable cut on %s %s and closed the opened pits " +
		"by backfilling the excavated trenchs after  restoration of fault on %s. the work is carried out On contract basis."

	cableTemplate = "Paid Charges to %s  and Team Rs %d Towards layed %dMtr OH cable for attending " +
		"OH cable cut %s on %s %s and restoration of fault on %s. the work is carried out On contract basis."
)

var (
	pitsCausePhrases = map[dto.Cause]string{
		dto.CauseWaterPipeline:    "due to JJM water pipeline trenching work",
		dto.CauseRoadWork:         "due to road work",
		dto.CauseBescomWork:       "due to BESCOM work",
		dto.CauseRailwayWork:      "due to Railway work",
		dto.CauseFaultRestoration: "for fault restoration",
	}
	cableCausePhrases = map[dto.Cause]string{
		dto.CauseBescomWork:       "due to BESCOM work",
		dto.CauseRoadWork:         "due to road work",
		dto.CauseMonkeyBite:       "due to Monkey bite",
		dto.CauseWaterPipeline:    "due to water pipeline work",
		dto.CauseFaultRestoration: "for fault restoration",
	}
)

// CausePhrase returns the wording for a cause; water pipeline work reads
// differently on pits and OH cable receipts.
func CausePhrase(workType dto.WorkType, cause dto.Cause) string {
	phrases := cableCausePhrases
	if workType == dto.WorkTypePits {
		phrases = pitsCausePhrases
	}
	if phrase, ok := phrases[cause]; ok {
		return phrase
	}
	return phrases[dto.CauseFaultRestoration]
}

// ComposeDescription builds the receipt description for one record. It is pure:
// the same record, facts and contractor always give the same sentence.
func ComposeDescription(rec dto.WorkRecord, facts dto.WorkFacts, contractor string) string {
	route := rec.Route
	if route == "" {
		route = defaultRouteDesc
	}
	date := utils.FormatReceiptDate(rec.Date)
	cause := CausePhrase(rec.WorkType, facts.Cause)

	if rec.WorkType == dto.WorkTypePits {
		return fmt.Sprintf(pitsTemplate, contractor, rec.Amount, facts.PitCount, facts.Location, route, cause, date)
	}
	return fmt.Sprintf(cableTemplate, contractor, rec.Amount, facts.LengthM, facts.Location, route, cause, date)
}
