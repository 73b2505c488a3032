package service

import (
	"sort"
	"strings"

	"admin-audit-log/internal/core/domain"
)

// FilterActions returns the records matching filter, most recent createdAt
// first. Records whose createdAt does not parse never satisfy a time bound
// and sort after every parsable record, keeping their append order.
// Pagination is left to the caller.
func FilterActions(records []domain.ActionRecord, filter domain.ActionFilter) []domain.ActionRecord {
	email := strings.ToLower(filter.AdminEmail)

	type entry struct {
		record  domain.ActionRecord
		created int64
		ok      bool
	}
	matched := make([]entry, 0, len(records))

	for _, r := range records {
		if email != "" && !strings.Contains(strings.ToLower(r.AdminEmail), email) {
			continue
		}
		if filter.ActionType != "" && r.ActionType != filter.ActionType {
			continue
		}
		if filter.SessionID != "" && r.SessionID != filter.SessionID {
			continue
		}
		created, ok := r.CreatedTime()
		if filter.From != nil && (!ok || created.Before(*filter.From)) {
			continue
		}
		if filter.To != nil && (!ok || created.After(*filter.To)) {
			continue
		}
		e := entry{record: r, ok: ok}
		if ok {
			e.created = created.UnixNano()
		}
		matched = append(matched, e)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if a.ok != b.ok {
			return a.ok
		}
		return a.created > b.created
	})

	out := make([]domain.ActionRecord, len(matched))
	for i := range matched {
		out[i] = matched[i].record
	}
	return out
}

// DistinctActionTypes returns the sorted set of action types present in records.
func DistinctActionTypes(records []domain.ActionRecord) []string {
	seen := make(map[string]struct{})
	for _, r := range records {
		seen[r.ActionType] = struct{}{}
	}
	types := make([]string, 0, len(seen))
	for t := range seen {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
