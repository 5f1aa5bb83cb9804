package service

import "sigma/internal/models"

// elementIndex is the live registry keyed by element id. Worklist reads and
// semester stats resolve completion only through it.
type elementIndex map[string]models.Element

// indexElements keeps the first element seen for a duplicated id.
func indexElements(elements []models.Element) elementIndex {
	ix := make(elementIndex, len(elements))
	for _, e := range elements {
		if _, dup := ix[e.ID]; !dup {
			ix[e.ID] = e
		}
	}
	return ix
}

// completion returns the live isCompleted of id and whether the element exists.
func (ix elementIndex) completion(id string) (completed, found bool) {
	e, ok := ix[id]
	if !ok {
		return false, false
	}
	return e.IsCompleted, true
}

// reconcileList returns a copy of stored whose items carry live completion.
// Items of deleted elements keep their stored snapshot. stored is not modified.
func reconcileList(stored models.MonthlyList, live elementIndex) models.MonthlyList {
	view := stored
	view.Items = make([]models.ListItem, len(stored.Items))
	for i, item := range stored.Items {
		if done, ok := live.completion(item.ElementID); ok {
			item.Completed = done
		}
		view.Items[i] = item
	}
	return view
}
