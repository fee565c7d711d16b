package schema

import "strings"

// Role is what a column means to the health report.
type Role int

const (
	RoleDate Role = iota
	RoleStation
	RoleEventStart
	RoleEventEnd
)

// Candidate names per role, in priority order.
var roleCandidates = map[Role][]string{
	RoleDate:       {"date", "datetime", "dt", "time_tag"},
	RoleStation:    {"station_id", "magstation_id", "iaga_code", "name", "id", "channel"},
	RoleEventStart: {"start", "begin"},
	RoleEventEnd:   {"end", "stop", "finish"},
}

// temporalRoles are only filled by columns holding dates.
var temporalRoles = map[Role]bool{
	RoleDate:       true,
	RoleEventStart: true,
	RoleEventEnd:   true,
}

func (r Role) String() string {
	switch r {
	case RoleDate:
		return "date"
	case RoleStation:
		return "station"
	case RoleEventStart:
		return "event start"
	case RoleEventEnd:
		return "event end"
	}
	return "unknown"
}

// FindColumn returns the actual name of the first column matching a
// candidate of role, skipping names in exclude. Matching ignores case so
// upper-case catalogs (Oracle) resolve too. Date and event roles skip
// columns whose type is not temporal, such as a "date" stored as varchar.
// Empty when nothing matches.
func (t *Table) FindColumn(role Role, exclude ...string) string {
	byName := make(map[string]string, len(t.Columns))
	for _, c := range t.Columns {
		if temporalRoles[role] && !c.IsTemporal() {
			continue
		}
		key := strings.ToLower(c.Name)
		if _, dup := byName[key]; !dup {
			byName[key] = c.Name
		}
	}
	for _, cand := range roleCandidates[role] {
		name, ok := byName[cand]
		if !ok || contains(exclude, name) {
			continue
		}
		return name
	}
	return ""
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
