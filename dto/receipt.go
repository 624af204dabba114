package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkType classifies a work order by the column 7 marker of the advance sheet.
type WorkType string

const (
	WorkTypePits          WorkType = "pits"
	WorkTypeOverheadCable WorkType = "oh_cable"
)

// Label returns the display name used in previews.
func (w WorkType) Label() string {
	if w == WorkTypePits {
		return "PITS Work"
	}
	return "OH Cable Work"
}

// Cause is the reason a cable cut happened, as read from the work details.
type Cause string

const (
	CauseWaterPipeline    Cause = "water_pipeline"
	CauseRoadWork         Cause = "road_work"
	CauseBescomWork       Cause = "bescom_work"
	CauseRailwayWork      Cause = "railway_work"
	CauseMonkeyBite       Cause = "monkey_bite"
	CauseFaultRestoration Cause = "fault_restoration"
)

// WorkRecord is one accepted row of the advance sheet.
type WorkRecord struct {
	Date        time.Time `json:"date"`
	Route       string    `json:"route"`
	WorkDetails string    `json:"work_details"`
	WorkType    WorkType  `json:"work_type"`
	Amount      int64     `json:"amount"`
	SourceRow   int       `json:"source_row"`
}

// WorkFacts holds what could be read out of the free text work details.
// PitCount is only meaningful for pits work, LengthM only for OH cable work.
type WorkFacts struct {
	PitCount   int              `json:"pit_count,omitempty"`
	LengthM    int              `json:"length_m,omitempty"`
	DistanceKm *decimal.Decimal `json:"distance_km,omitempty"`
	From       string           `json:"from,omitempty"`
	At         string           `json:"at,omitempty"`
	Location   string           `json:"location"`
	Cause      Cause            `json:"cause"`
}
