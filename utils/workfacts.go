package utils

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Aashish23092/cash-receipt-generator/dto"
	"github.com/shopspring/decimal"
)

const (
	DefaultPitCount    = 2
	DefaultCableLength = 100
	defaultOrigin      = "Exchange"
)

var (
	pitCountRegex    = regexp.MustCompile(`(?i)(\d+)\s*pits?`)
	cableLengthRegex = regexp.MustCompile(`(?i)(\d+)\s*mtr`)
	distanceRegex    = regexp.MustCompile(`(?i)(\d+\.\d+)km`)

	// origin runs until " in", " due", a comma, a period or the end of the text
	fromRegex = regexp.MustCompile(`(?i)from\s+([A-Za-z\s]+?)(?:\s+in|\s+due|\s*,|\.|$)`)
	atRegex   = regexp.MustCompile(`(?i)at\s+([^,.]+)`)
)

type causeRule struct {
	keywords []string
	cause    dto.Cause
}

// Rules are tried in order, first hit wins.
var (
	pitsCauseRules = []causeRule{
		{[]string{"water", "pipeline"}, dto.CauseWaterPipeline},
		{[]string{"road", "nh"}, dto.CauseRoadWork},
		{[]string{"bescom"}, dto.CauseBescomWork},
		{[]string{"rly", "railway"}, dto.CauseRailwayWork},
	}
	cableCauseRules = []causeRule{
		{[]string{"bescom"}, dto.CauseBescomWork},
		{[]string{"road"}, dto.CauseRoadWork},
		{[]string{"monkey"}, dto.CauseMonkeyBite},
		{[]string{"water", "pipeline"}, dto.CauseWaterPipeline},
	}
)

// ExtractWorkFacts reads pit count or cable length, the fault location and the
// cause out of the free text work details of one record.
func ExtractWorkFacts(workType dto.WorkType, details, route string) dto.WorkFacts {
	facts := dto.WorkFacts{}

	if workType == dto.WorkTypePits {
		facts.PitCount = extractPitCount(details)
	} else {
		facts.LengthM = extractCableLength(details)
	}

	extractLocation(&facts, workType, details, route)
	facts.Cause = classifyCause(workType, details)

	return facts
}

func extractPitCount(text string) int {
	return firstInt(pitCountRegex, text, DefaultPitCount)
}

func extractCableLength(text string) int {
	return firstInt(cableLengthRegex, text, DefaultCableLength)
}

func firstInt(re *regexp.Regexp, text string, def int) int {
	if matches := re.FindStringSubmatch(text); len(matches) > 1 {
		if n, err := strconv.Atoi(matches[1]); err == nil {
			return n
		}
	}
	return def
}

// extractLocation fills the distance, origin and at-location facts and composes
// the location phrase. Priority: OTDR distance, then "at ...", then the route.
func extractLocation(facts *dto.WorkFacts, workType dto.WorkType, text, route string) {
	if matches := distanceRegex.FindStringSubmatch(text); len(matches) > 1 {
		if d, err := decimal.NewFromString(matches[1]); err == nil {
			facts.DistanceKm = &d
			facts.From = extractOrigin(text, route)
			facts.Location = "at OTDR Distance " + FormatDistance(d) + "Km from " + facts.From
			return
		}
	}

	if workType == dto.WorkTypeOverheadCable {
		// OH cable work only falls back to the route when "at" appears nowhere in
		// the text. An "at" not followed by a place leaves the location empty.
		if !strings.Contains(strings.ToLower(text), "at") {
			facts.Location = "on " + route
			return
		}
		if at := extractAt(text); at != "" {
			facts.At = at
			facts.Location = "at " + at
		}
		return
	}

	if at := extractAt(text); at != "" {
		facts.At = at
		facts.Location = "at " + at
		return
	}
	facts.Location = "on " + route
}

func extractOrigin(text, route string) string {
	if matches := fromRegex.FindStringSubmatch(text); len(matches) > 1 {
		if origin := strings.TrimSpace(matches[1]); origin != "" {
			return origin
		}
	}
	if fields := strings.Fields(route); len(fields) > 0 {
		return fields[0]
	}
	return defaultOrigin
}

func extractAt(text string) string {
	if matches := atRegex.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}
	return ""
}

func classifyCause(workType dto.WorkType, text string) dto.Cause {
	rules := cableCauseRules
	if workType == dto.WorkTypePits {
		rules = pitsCauseRules
	}

	lower := strings.ToLower(text)
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.cause
			}
		}
	}
	return dto.CauseFaultRestoration
}

// FormatDistance keeps the number of decimals the distance was written with,
// so "1.50km" stays "1.50".
func FormatDistance(d decimal.Decimal) string {
	places := -d.Exponent()
	if places < 0 {
		places = 0
	}
	return d.StringFixed(places)
}

// ClassifyWorkType maps the column 7 marker to a work type.
func ClassifyWorkType(marker string) dto.WorkType {
	if strings.Contains(strings.ToLower(marker), "pit") {
		return dto.WorkTypePits
	}
	return dto.WorkTypeOverheadCable
}
