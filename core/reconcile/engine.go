package reconcile

import "sort"

// Reconcile partitions the display names of catalog (identifier -> display
// name) into installed and not installed, given the set of identifiers found
// on disk.
//
// The partition is computed over display names: when two identifiers share a
// display name and only one of them is installed, the name is reported as
// installed and never as missing. Neither input is modified.
func Reconcile(catalog map[string]string, installed map[string]struct{}) Result {
	installedNames := make(map[string]struct{})
	for id, name := range catalog {
		if _, ok := installed[id]; ok {
			installedNames[name] = struct{}{}
		}
	}

	missingNames := make(map[string]struct{})
	for _, name := range catalog {
		if _, ok := installedNames[name]; ok {
			continue
		}
		missingNames[name] = struct{}{}
	}

	return Result{
		Installed:    sortedKeys(installedNames),
		NotInstalled: sortedKeys(missingNames),
	}
}

// Details returns one EntryStatus per catalog identifier, sorted by identifier.
func Details(catalog map[string]string, installed map[string]struct{}) []EntryStatus {
	installedNames := make(map[string]struct{})
	for id, name := range catalog {
		if _, ok := installed[id]; ok {
			installedNames[name] = struct{}{}
		}
	}

	entries := make([]EntryStatus, 0, len(catalog))
	for id, name := range catalog {
		_, present := installed[id]
		_, nameInstalled := installedNames[name]
		entries = append(entries, EntryStatus{
			ID:      id,
			Name:    name,
			Present: present,
			Aliased: !present && nameInstalled,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})

	return entries
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
