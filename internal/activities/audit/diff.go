package audit

import (
	"encoding/json"
	"sort"
)

// Snapshot flattens a resource into a JSON object for storage. Returns nil
// when the value is nil or does not marshal to an object.
func Snapshot(v any) map[string]any {
	if v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}

// ChangedKeys lists the top-level fields whose value differs between the two
// snapshots, sorted. A key present on only one side counts as changed.
func ChangedKeys(before, after map[string]any) []string {
	keys := make(map[string]struct{}, len(before)+len(after))
	for k := range before {
		keys[k] = struct{}{}
	}
	for k := range after {
		keys[k] = struct{}{}
	}

	var changed []string
	for k := range keys {
		b, inBefore := before[k]
		a, inAfter := after[k]
		if inBefore != inAfter || !jsonEqual(b, a) {
			changed = append(changed, k)
		}
	}
	sort.Strings(changed)
	return changed
}

// jsonEqual compares two already-unmarshaled JSON values.
func jsonEqual(a, b any) bool {
	ra, errA := json.Marshal(a)
	rb, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return string(ra) == string(rb)
}
