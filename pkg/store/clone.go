package store

import (
	"github.com/agentstation/utc"

	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/packing"
)

// SaveAsTemplate deep-clones a list into a reusable template: fresh ids
// throughout, every item unchecked, no trip attachment. Returns the new
// template's id.
func (s *Store) SaveAsTemplate(listID, name string) (string, error) {
	source, err := s.Get(listID)
	if err != nil {
		return "", err
	}

	clone := cloneWithFreshIDs(source)
	if name != "" {
		clone.Name = name
	}
	clone.TripID = ""
	clone.IsTemplate = true

	s.insert(clone)
	return clone.ID, nil
}

// CopyTemplateToTrip clones a template into a working list attached to
// the given trip. Returns the new list's id.
func (s *Store) CopyTemplateToTrip(templateID, tripID string) (string, error) {
	source, err := s.Get(templateID)
	if err != nil {
		return "", err
	}

	clone := cloneWithFreshIDs(source)
	clone.TripID = tripID
	clone.IsTemplate = false

	s.insert(clone)
	return clone.ID, nil
}

// ToggleTemplateStatus flips a list between template and working list.
func (s *Store) ToggleTemplateStatus(listID string) error {
	return s.mutate(listID, func(list *packing.PackingList) error {
		list.IsTemplate = !list.IsTemplate
		return nil
	})
}

// cloneWithFreshIDs deep-copies a list, regenerating every id and
// clearing checked state. Timestamps restart at now.
func cloneWithFreshIDs(source packing.PackingList) packing.PackingList {
	now := utc.Now()
	clone := packing.DeepCopyList(source)
	clone.ID = packing.NewID("list")
	clone.CreatedAt = now
	clone.UpdatedAt = now

	for i := range clone.Sections {
		clone.Sections[i].ID = packing.NewID("sec")
		for j := range clone.Sections[i].Items {
			clone.Sections[i].Items[j].ID = packing.NewID("item")
			clone.Sections[i].Items[j].Checked = false
		}
	}
	return clone
}
