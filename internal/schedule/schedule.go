// Package schedule parses the two text mini-languages for time-varying
// plan inputs: salary upgrade events and scheduled saving rates.
//
// Both grammars are semicolon-separated segments of comma-separated
// fields. Malformed segments (wrong field count, unparseable numbers,
// unknown upgrade kind) are skipped, not errors: a partially valid
// string yields the events that did parse, in input order.
package schedule

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"firecast/internal/model"
)

// ParseSalaryUpgrades parses a string like "30,raise,10;35,absolute,150000"
// into salary upgrade events. Duplicate ages are all retained; the
// engine applies the last event at a given age.
func ParseSalaryUpgrades(s string) []model.SalaryUpgrade {
	var upgrades []model.SalaryUpgrade
	for _, seg := range splitSegments(s) {
		fields := strings.Split(seg, ",")
		if len(fields) != 3 {
			continue
		}
		age, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			continue
		}
		kind, ok := parseKind(fields[1])
		if !ok {
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		if err != nil {
			continue
		}
		upgrades = append(upgrades, model.SalaryUpgrade{Age: age, Kind: kind, Value: value})
	}
	return upgrades
}

// ParseSavingsRates parses a string like "25,30;37,20.25" into
// scheduled saving rates.
func ParseSavingsRates(s string) []model.ScheduledRate {
	var rates []model.ScheduledRate
	for _, seg := range splitSegments(s) {
		fields := strings.Split(seg, ",")
		if len(fields) != 2 {
			continue
		}
		age, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			continue
		}
		rate, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			continue
		}
		rates = append(rates, model.ScheduledRate{Age: age, Rate: rate})
	}
	return rates
}

// RateAt returns the saving rate in effect at the given age: the rate
// attached to the greatest scheduled age <= age, or def when no
// scheduled age applies. Entries sharing an age are resolved by input
// order, last one wins.
func RateAt(age int, rates []model.ScheduledRate, def float64) float64 {
	if len(rates) == 0 {
		return def
	}

	sorted := make([]model.ScheduledRate, len(rates))
	copy(sorted, rates)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Age < sorted[j].Age })

	rate := def
	for _, r := range sorted {
		if r.Age > age {
			break
		}
		rate = r.Rate
	}
	return rate
}

// FormatSalaryUpgrades serializes upgrades back to the text grammar.
// Round-trips with ParseSalaryUpgrades.
func FormatSalaryUpgrades(upgrades []model.SalaryUpgrade) string {
	segs := make([]string, 0, len(upgrades))
	for _, u := range upgrades {
		segs = append(segs, fmt.Sprintf("%d,%s,%s", u.Age, u.Kind, formatValue(u.Value)))
	}
	return strings.Join(segs, ";")
}

// FormatSavingsRates serializes scheduled rates back to the text
// grammar. Round-trips with ParseSavingsRates.
func FormatSavingsRates(rates []model.ScheduledRate) string {
	segs := make([]string, 0, len(rates))
	for _, r := range rates {
		segs = append(segs, fmt.Sprintf("%d,%s", r.Age, formatValue(r.Rate)))
	}
	return strings.Join(segs, ";")
}

func splitSegments(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var segs []string
	for _, seg := range strings.Split(s, ";") {
		seg = strings.TrimSpace(seg)
		if seg != "" {
			segs = append(segs, seg)
		}
	}
	return segs
}

func parseKind(s string) (model.UpgradeKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(model.UpgradeRaise):
		return model.UpgradeRaise, true
	case string(model.UpgradeAbsolute):
		return model.UpgradeAbsolute, true
	default:
		return "", false
	}
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
