package network

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

type trustTally struct {
	High  int
	Low   int
	Total int
}

// TrustPatterns looks for what correlates with trust: company clusters
// where trust concentrates, the trust/closeness correlation, and
// recurring themes in why people earn low trust.
func TrustPatterns(snap *Snapshot) []Pattern {
	var patterns []Pattern

	byCompany := make(map[string]*trustTally)
	var companyOrder []string
	byStrength := make(map[Strength]*trustTally)
	var lowTrust []Connection

	tallyFor := func(m map[string]*trustTally, order *[]string, key string) *trustTally {
		t, ok := m[key]
		if !ok {
			t = &trustTally{}
			m[key] = t
			*order = append(*order, key)
		}
		return t
	}

	for _, conn := range snap.Connections {
		company := conn.Company
		if company == "" {
			company = "Unknown"
		}
		ct := tallyFor(byCompany, &companyOrder, company)
		st, ok := byStrength[conn.RelationshipStrength]
		if !ok {
			st = &trustTally{}
			byStrength[conn.RelationshipStrength] = st
		}

		switch conn.TrustLevel {
		case TrustHigh:
			ct.High++
			st.High++
		case TrustLow:
			ct.Low++
			st.Low++
			lowTrust = append(lowTrust, conn)
		}
		ct.Total++
		st.Total++
	}

	// Companies with at least two high-trust people, at least three
	// people total, and a majority-high ratio.
	type companyCluster struct {
		Company string
		High    int
		Total   int
	}
	var clusters []companyCluster
	for _, company := range companyOrder {
		t := byCompany[company]
		if t.High >= 2 && t.Total >= 3 && float64(t.High)/float64(t.Total) >= 0.5 {
			clusters = append(clusters, companyCluster{company, t.High, t.Total})
		}
	}
	if len(clusters) > 0 {
		sort.SliceStable(clusters, func(i, j int) bool { return clusters[i].High > clusters[j].High })
		var evidence []string
		for i, c := range clusters {
			if i >= 5 {
				break
			}
			evidence = append(evidence, fmt.Sprintf("%s: %d/%d high trust", c.Company, c.High, c.Total))
		}
		patterns = append(patterns, Pattern{
			Kind:        "trust_by_company",
			Description: "Companies where you trust many people",
			Evidence:    evidence,
			Suggestion:  "Your trust may correlate with company culture or hiring quality",
		})
	}

	// Trust vs relationship strength. Both denominators must be nonzero
	// or the comparison is meaningless.
	closeTally := byStrength[StrengthClose]
	coldTally := byStrength[StrengthCold]
	if closeTally != nil && coldTally != nil && closeTally.Total > 0 && coldTally.Total > 0 {
		closeRatio := float64(closeTally.High) / float64(closeTally.Total)
		coldRatio := float64(coldTally.High) / float64(coldTally.Total)
		if closeRatio > coldRatio*2 {
			patterns = append(patterns, Pattern{
				Kind:        "trust_strength_correlation",
				Description: "Trust correlates with relationship closeness",
				Evidence: []string{
					fmt.Sprintf("Close relationships: %d/%d high trust (%d%%)",
						closeTally.High, closeTally.Total, roundPct(closeRatio)),
					fmt.Sprintf("Cold relationships: %d/%d high trust (%d%%)",
						coldTally.High, coldTally.Total, roundPct(coldRatio)),
				},
				Suggestion: "You build trust through interaction (expected pattern)",
			})
		}
	}

	// Recurring themes in low-trust negatives.
	var reasons []string
	for _, conn := range lowTrust {
		reasons = append(reasons, conn.Negatives...)
	}
	if len(reasons) > 0 {
		common := topRecurring(mineWords(reasons), 10)
		if len(common) > 0 {
			var words []string
			for i, wc := range common {
				if i >= 5 {
					break
				}
				words = append(words, wc.Word)
			}
			patterns = append(patterns, Pattern{
				Kind:        "low_trust_patterns",
				Description: "Common themes in low-trust connections",
				Evidence:    []string{"Recurring terms: " + strings.Join(words, ", ")},
				Suggestion:  "These might be your trust dealbreakers",
			})
		}
	}

	return patterns
}

type energyTally struct {
	Energizing int
	Draining   int
	Total      int
}

// EnergyPatterns looks for what correlates with energy: domains that
// energize or drain, and trust/energy mismatches worth examining.
func EnergyPatterns(snap *Snapshot) []Pattern {
	var patterns []Pattern

	byDomain := make(map[string]*energyTally)
	var domainOrder []string
	byTrust := make(map[Trust]*energyTally)

	for _, conn := range snap.Connections {
		trust := conn.TrustLevel
		if trust == "" {
			trust = TrustUnknown
		}
		tt, ok := byTrust[trust]
		if !ok {
			tt = &energyTally{}
			byTrust[trust] = tt
		}

		for _, domain := range conn.Domains {
			dt, ok := byDomain[domain]
			if !ok {
				dt = &energyTally{}
				byDomain[domain] = dt
				domainOrder = append(domainOrder, domain)
			}
			dt.Total++
			switch conn.Energy {
			case EnergyEnergizing:
				dt.Energizing++
			case EnergyDraining:
				dt.Draining++
			}
		}

		switch conn.Energy {
		case EnergyEnergizing:
			tt.Energizing++
		case EnergyDraining:
			tt.Draining++
		}
	}

	if p, ok := domainEnergyPattern(byDomain, domainOrder, true); ok {
		patterns = append(patterns, p)
	}
	if p, ok := domainEnergyPattern(byDomain, domainOrder, false); ok {
		patterns = append(patterns, p)
	}

	highTrustDraining := 0
	if t := byTrust[TrustHigh]; t != nil {
		highTrustDraining = t.Draining
	}
	lowTrustDraining := 0
	if t := byTrust[TrustLow]; t != nil {
		lowTrustDraining = t.Draining
	}

	if highTrustDraining > 0 {
		patterns = append(patterns, Pattern{
			Kind:        "trust_energy_mismatch",
			Description: fmt.Sprintf("You have %d high-trust but draining connections", highTrustDraining),
			Evidence:    []string{"These relationships may be worth examining"},
			Suggestion:  "High trust + draining = possible obligation or guilt dynamic",
		})
	}
	if lowTrustDraining > 2 {
		patterns = append(patterns, Pattern{
			Kind:        "low_trust_draining",
			Description: fmt.Sprintf("%d low-trust draining connections", lowTrustDraining),
			Evidence:    []string{"Consider whether these relationships are necessary"},
			Suggestion:  "Low trust + draining = candidates for reducing exposure",
		})
	}

	return patterns
}

func domainEnergyPattern(byDomain map[string]*energyTally, order []string, energizing bool) (Pattern, bool) {
	type domainCount struct {
		Domain string
		Count  int
	}
	var hits []domainCount
	for _, domain := range order {
		t := byDomain[domain]
		count := t.Draining
		if energizing {
			count = t.Energizing
		}
		if count >= 2 {
			hits = append(hits, domainCount{domain, count})
		}
	}
	if len(hits) == 0 {
		return Pattern{}, false
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Count > hits[j].Count })

	var evidence []string
	word := "draining"
	if energizing {
		word = "energizing"
	}
	for i, h := range hits {
		if i >= 5 {
			break
		}
		evidence = append(evidence, fmt.Sprintf("%s: %d %s connections", h.Domain, h.Count, word))
	}

	if energizing {
		return Pattern{
			Kind:        "energizing_domains",
			Description: "Domains that tend to energize you",
			Evidence:    evidence,
			Suggestion:  "Consider seeking more relationships in these areas",
		}, true
	}
	return Pattern{
		Kind:        "draining_domains",
		Description: "Domains that tend to drain you",
		Evidence:    evidence,
		Suggestion:  "Be mindful when engaging in these areas",
	}, true
}

func roundPct(ratio float64) int {
	return int(math.Round(ratio * 100))
}
