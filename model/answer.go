package model

import "sort"

// Answer is the quiz boundary's tagged union: a learner either picks one id
// or a set of ids, depending on the question widget. Exactly one of the two
// fields is expected to be set; Normalize collapses both shapes so the engine
// never branches on which one arrived.
type Answer struct {
	Single   *string  `json:"single,omitempty"`
	Multiple []string `json:"multiple,omitempty"`
}

// Normalize returns the answer as a sorted, de-duplicated id list.
func (a Answer) Normalize() []string {
	seen := make(map[string]bool)
	var ids []string
	add := func(id string) {
		if id != "" && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	if a.Single != nil {
		add(*a.Single)
	}
	for _, id := range a.Multiple {
		add(id)
	}
	sort.Strings(ids)
	return ids
}
