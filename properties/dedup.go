package properties

import "strings"

// Dedup collapses duplicate properties, keeping the first occurrence.
// The key is the lowercased APN, falling back to the lowercased address
// when the APN is empty. Records with neither are unkeyable and are
// dropped, independent of the upstream rejection rule. The operation is
// stable and idempotent.
func Dedup(list []Property) []Property {
	seen := make(map[string]bool, len(list))
	out := make([]Property, 0, len(list))

	for _, p := range list {
		key := strings.ToLower(strings.TrimSpace(p.APN))
		if key == "" {
			key = strings.ToLower(strings.TrimSpace(p.Address))
		}
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}

	return out
}
