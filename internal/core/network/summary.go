package network

import (
	"sort"
	"time"
)

// DomainCount pairs a domain tag with how many connections carry it.
type DomainCount struct {
	Domain string
	Count  int
}

// TrustCounts breaks the network down by trust level. Connections with
// no trust set count as unknown.
type TrustCounts struct {
	High    int
	Medium  int
	Low     int
	Unknown int
}

// EnergyCounts breaks the network down by energy. Connections with no
// energy set count as neutral.
type EnergyCounts struct {
	Energizing int
	Neutral    int
	Draining   int
}

// Summary is the network overview used by reports and the quick status.
type Summary struct {
	TotalConnections  int
	Close             int
	Warm              int
	Cold              int
	TopDomains        []DomainCount
	StaleCount        int
	StaleHighPriority []Insight
	Gaps              []string
	Trust             TrustCounts
	Energy            EnergyCounts
	WithPositives     int
	WithNegatives     int
}

// NetworkSummary computes the overview: strength/trust/energy breakdowns,
// top domains, stale relationships, and high-priority gaps against the
// default target domains.
func NetworkSummary(snap *Snapshot, now time.Time) Summary {
	s := Summary{TotalConnections: len(snap.Connections)}

	domainCounts := make(map[string]int)
	var domainOrder []string

	for _, conn := range snap.Connections {
		switch conn.RelationshipStrength {
		case StrengthClose:
			s.Close++
		case StrengthWarm:
			s.Warm++
		default:
			s.Cold++
		}

		for _, domain := range conn.Domains {
			if _, seen := domainCounts[domain]; !seen {
				domainOrder = append(domainOrder, domain)
			}
			domainCounts[domain]++
		}

		switch conn.TrustLevel {
		case TrustHigh:
			s.Trust.High++
		case TrustMedium:
			s.Trust.Medium++
		case TrustLow:
			s.Trust.Low++
		default:
			s.Trust.Unknown++
		}

		switch conn.Energy {
		case EnergyEnergizing:
			s.Energy.Energizing++
		case EnergyDraining:
			s.Energy.Draining++
		default:
			s.Energy.Neutral++
		}

		if len(conn.Positives) > 0 {
			s.WithPositives++
		}
		if len(conn.Negatives) > 0 {
			s.WithNegatives++
		}
	}

	sort.SliceStable(domainOrder, func(i, j int) bool {
		return domainCounts[domainOrder[i]] > domainCounts[domainOrder[j]]
	})
	for i, domain := range domainOrder {
		if i >= 5 {
			break
		}
		s.TopDomains = append(s.TopDomains, DomainCount{Domain: domain, Count: domainCounts[domain]})
	}

	stale := StaleRelationships(snap, now, DefaultStaleThresholdDays)
	s.StaleCount = len(stale)
	for _, insight := range stale {
		if insight.Priority == PriorityHigh {
			s.StaleHighPriority = append(s.StaleHighPriority, insight)
		}
	}

	for _, gap := range NetworkGaps(snap, nil) {
		if gap.Priority == PriorityHigh {
			s.Gaps = append(s.Gaps, gap.Message)
		}
	}

	return s
}

// StoreStats is the stats block written alongside a serialized
// snapshot. Stale here is the narrow import-time definition: warm/close
// with no imported message in 180 days (manual last_contact tracking is
// an analysis concern, not a storage one).
type StoreStats struct {
	Total              int            `yaml:"total"`
	ByRelationship     map[string]int `yaml:"by_relationship"`
	ByDomain           map[string]int `yaml:"by_domain"`
	StaleRelationships []string       `yaml:"stale_relationships"`
}

// ComputeStoreStats derives the serialization stats block.
func ComputeStoreStats(snap *Snapshot, now time.Time) StoreStats {
	stats := StoreStats{
		ByRelationship: map[string]int{"cold": 0, "warm": 0, "close": 0},
		ByDomain:       make(map[string]int),
	}
	cutoff := now.AddDate(0, 0, -DefaultStaleThresholdDays).Format(DateLayout)

	for _, conn := range snap.Connections {
		stats.Total++
		stats.ByRelationship[string(conn.RelationshipStrength)]++

		if conn.RelationshipStrength == StrengthWarm || conn.RelationshipStrength == StrengthClose {
			if conn.LastMessage != "" && conn.LastMessage < cutoff {
				stats.StaleRelationships = append(stats.StaleRelationships, conn.ID)
			}
		}
		for _, domain := range conn.Domains {
			stats.ByDomain[domain]++
		}
	}
	return stats
}

// Assessment is the full picture of a single connection, for a
// pre-meeting brief or a point lookup.
type Assessment struct {
	ID                   string
	Name                 string
	Company              string
	Position             string
	RelationshipStrength Strength
	TrustLevel           Trust
	Energy               Energy
	Positives            []string
	Negatives            []string
	Domains              []string
	CanAskFor            []string
	LastContact          string
	Notes                string
}

// ConnectionAssessment looks up a connection by id. The boolean reports
// whether it was found; a miss is a normal result, never a fault.
func ConnectionAssessment(snap *Snapshot, connectionID string) (Assessment, bool) {
	for _, conn := range snap.Connections {
		if conn.ID != connectionID {
			continue
		}
		trust := conn.TrustLevel
		if trust == "" {
			trust = TrustUnknown
		}
		energy := conn.Energy
		if energy == "" {
			energy = EnergyNeutral
		}
		return Assessment{
			ID:                   conn.ID,
			Name:                 conn.Name,
			Company:              conn.Company,
			Position:             conn.Position,
			RelationshipStrength: conn.RelationshipStrength,
			TrustLevel:           trust,
			Energy:               energy,
			Positives:            conn.Positives,
			Negatives:            conn.Negatives,
			Domains:              conn.Domains,
			CanAskFor:            conn.CanAskFor,
			LastContact:          conn.LastTouch(),
			Notes:                conn.Notes,
		}, true
	}
	return Assessment{}, false
}
