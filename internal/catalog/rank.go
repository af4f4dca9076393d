package catalog

import "strings"

// nameWeight biases matches in the entity name over matches in longer
// descriptive text.
const nameWeight = 2.0

// searchRank scores an entity against a free-text query. Zero means no
// term matched at all; such entities are excluded from search results.
func searchRank(query, name, description string) float64 {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return 0
	}

	name = strings.ToLower(name)
	description = strings.ToLower(description)

	var rank float64
	for _, term := range terms {
		rank += nameWeight * float64(strings.Count(name, term))
		rank += float64(strings.Count(description, term))
	}
	return rank
}

// hasSearch reports whether a filter's search predicate carries a usable
// term.
func hasSearch(search *string) bool {
	return search != nil && strings.TrimSpace(*search) != ""
}
