package utils

import (
	"testing"

	"github.com/Aashish23092/cash-receipt-generator/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractWorkFacts_PitsWithOTDRDistance(t *testing.T) {
	text := "2 pits at OTDR Distance 1.50km from XYZ Exchange due to BESCOM work"

	facts := ExtractWorkFacts(dto.WorkTypePits, text, "Tumkur Gubbi")

	assert.Equal(t, 2, facts.PitCount)
	require.NotNil(t, facts.DistanceKm)
	assert.Equal(t, "1.50", FormatDistance(*facts.DistanceKm))
	assert.Equal(t, "XYZ Exchange", facts.From)
	assert.Equal(t, "at OTDR Distance 1.50Km from XYZ Exchange", facts.Location)
	assert.Equal(t, dto.CauseBescomWork, facts.Cause)
}

func TestExtractWorkFacts_PitsDefaults(t *testing.T) {
	facts := ExtractWorkFacts(dto.WorkTypePits, "Cable cut near Kyathsandra NH48", "Tumkur Kyathsandra")

	assert.Equal(t, DefaultPitCount, facts.PitCount)
	assert.Nil(t, facts.DistanceKm)
	assert.Equal(t, "on Tumkur Kyathsandra", facts.Location)
	assert.Equal(t, dto.CauseRoadWork, facts.Cause)
}

func TestExtractWorkFacts_PitsAtLocation(t *testing.T) {
	facts := ExtractWorkFacts(dto.WorkTypePits, "3 pits opened at Gubbi rly gate, urgent", "Tumkur Gubbi")

	assert.Equal(t, 3, facts.PitCount)
	assert.Equal(t, "Gubbi rly gate", facts.At)
	assert.Equal(t, "at Gubbi rly gate", facts.Location)
	assert.Equal(t, dto.CauseRailwayWork, facts.Cause)
}

func TestExtractWorkFacts_OriginFallsBackToRoute(t *testing.T) {
	facts := ExtractWorkFacts(dto.WorkTypePits, "Fault at 2.35km towards Nittur", "Tumkur Nittur")
	assert.Equal(t, "Tumkur", facts.From)
	assert.Equal(t, "at OTDR Distance 2.35Km from Tumkur", facts.Location)

	facts = ExtractWorkFacts(dto.WorkTypePits, "Fault at 2.35km towards Nittur", "")
	assert.Equal(t, "at OTDR Distance 2.35Km from Exchange", facts.Location)
}

func TestExtractWorkFacts_OriginTerminators(t *testing.T) {
	cases := map[string]string{
		"Cut at 0.80km from Gubbi":                  "Gubbi",
		"OTDR 1.2km from Kunigal in field":          "Kunigal",
		"OTDR 1.2km from Kora Cross, near temple":   "Kora Cross",
		"OTDR 3.05KM FROM Hebbur Exchange. Restored": "Hebbur Exchange",
	}
	for text, want := range cases {
		facts := ExtractWorkFacts(dto.WorkTypeOverheadCable, text, "Route")
		assert.Equal(t, want, facts.From, text)
	}
}

func TestExtractWorkFacts_CableAtLocation(t *testing.T) {
	facts := ExtractWorkFacts(dto.WorkTypeOverheadCable, "Laid 150 mtr OH cable at Kora village, monkey bite", "Tumkur Kora")

	assert.Equal(t, 150, facts.LengthM)
	assert.Equal(t, 0, facts.PitCount)
	assert.Equal(t, "at Kora village", facts.Location)
	assert.Equal(t, dto.CauseMonkeyBite, facts.Cause)
}

func TestExtractWorkFacts_CableLocationAsymmetry(t *testing.T) {
	// no "at" anywhere: the route is used
	facts := ExtractWorkFacts(dto.WorkTypeOverheadCable, "Replaced 80 mtr cable, Bescom pole shifting", "Tumkur-Gubbi")
	assert.Equal(t, 80, facts.LengthM)
	assert.Equal(t, "on Tumkur-Gubbi", facts.Location)
	assert.Equal(t, dto.CauseBescomWork, facts.Cause)

	// "at" only inside a word: location stays empty for OH cable work
	facts = ExtractWorkFacts(dto.WorkTypeOverheadCable, "Water logging damaged span", "Tumkur-Gubbi")
	assert.Equal(t, DefaultCableLength, facts.LengthM)
	assert.Empty(t, facts.Location)
	assert.Equal(t, dto.CauseWaterPipeline, facts.Cause)

	// same text as pits work falls back to the route
	facts = ExtractWorkFacts(dto.WorkTypePits, "Water logging damaged span", "Tumkur-Gubbi")
	assert.Equal(t, "on Tumkur-Gubbi", facts.Location)
}

func TestExtractWorkFacts_AtInsideWord(t *testing.T) {
	text := "Cable cut near flat Gubbi gate, urgent"

	for _, wt := range []dto.WorkType{dto.WorkTypePits, dto.WorkTypeOverheadCable} {
		facts := ExtractWorkFacts(wt, text, "Tumkur Gubbi")
		assert.Equal(t, "Gubbi gate", facts.At, wt)
		assert.Equal(t, "at Gubbi gate", facts.Location, wt)
	}
}

func TestClassifyCause_Priority(t *testing.T) {
	assert.Equal(t, dto.CauseWaterPipeline, classifyCause(dto.WorkTypePits, "pipeline work near road"))
	assert.Equal(t, dto.CauseRoadWork, classifyCause(dto.WorkTypeOverheadCable, "pipeline work near road"))
	assert.Equal(t, dto.CauseBescomWork, classifyCause(dto.WorkTypeOverheadCable, "BESCOM road widening"))
	assert.Equal(t, dto.CauseFaultRestoration, classifyCause(dto.WorkTypePits, "cable cut"))
	assert.Equal(t, dto.CauseFaultRestoration, classifyCause(dto.WorkTypeOverheadCable, "cable cut"))
}

func TestClassifyWorkType(t *testing.T) {
	assert.Equal(t, dto.WorkTypePits, ClassifyWorkType("PITS"))
	assert.Equal(t, dto.WorkTypePits, ClassifyWorkType("Joint pit"))
	assert.Equal(t, dto.WorkTypeOverheadCable, ClassifyWorkType("OH Cable"))
	assert.Equal(t, dto.WorkTypeOverheadCable, ClassifyWorkType(""))
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "1.50", FormatDistance(decimal.RequireFromString("1.50")))
	assert.Equal(t, "0.8", FormatDistance(decimal.RequireFromString("0.8")))
	assert.Equal(t, "12", FormatDistance(decimal.RequireFromString("12")))
}
