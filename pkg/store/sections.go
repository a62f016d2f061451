package store

import (
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/canonical"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/errors"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/packing"
)

// AddSection appends a new section to a list and returns its id.
// Section titles are unique within a list.
func (s *Store) AddSection(listID, title string) (string, error) {
	if title == "" {
		return "", &errors.ValidationError{Field: "title", Message: "cannot be empty"}
	}

	id := packing.NewID("sec")
	err := s.mutate(listID, func(list *packing.PackingList) error {
		if _, exists := list.Section(title); exists {
			return &errors.ValidationError{Field: "title", Value: title, Message: "section title already exists"}
		}
		list.Sections = append(list.Sections, packing.PackingSection{
			ID:    id,
			Title: title,
		})
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// RenameSection changes a section's title, keeping titles unique.
func (s *Store) RenameSection(listID, sectionID, title string) error {
	if title == "" {
		return &errors.ValidationError{Field: "title", Message: "cannot be empty"}
	}

	return s.mutate(listID, func(list *packing.PackingList) error {
		section := findSection(list, sectionID)
		if section == nil {
			return &errors.NotFoundError{Resource: "section", ID: sectionID}
		}
		if existing, ok := list.Section(title); ok && existing.ID != sectionID {
			return &errors.ValidationError{Field: "title", Value: title, Message: "section title already exists"}
		}
		section.Title = title
		return nil
	})
}

// DeleteSection removes a section and all its items.
func (s *Store) DeleteSection(listID, sectionID string) error {
	return s.mutate(listID, func(list *packing.PackingList) error {
		for i := range list.Sections {
			if list.Sections[i].ID == sectionID {
				list.Sections = append(list.Sections[:i], list.Sections[i+1:]...)
				return nil
			}
		}
		return &errors.NotFoundError{Resource: "section", ID: sectionID}
	})
}

// ReorderSections rearranges a list's sections to match the given id
// order. The ids must be exactly the list's current section ids.
func (s *Store) ReorderSections(listID string, sectionIDs []string) error {
	return s.mutate(listID, func(list *packing.PackingList) error {
		if len(sectionIDs) != len(list.Sections) {
			return &errors.ValidationError{Field: "sectionIDs", Message: "must name every section exactly once"}
		}

		byID := make(map[string]packing.PackingSection, len(list.Sections))
		for _, section := range list.Sections {
			byID[section.ID] = section
		}

		next := make([]packing.PackingSection, 0, len(sectionIDs))
		for _, id := range sectionIDs {
			section, ok := byID[id]
			if !ok {
				return &errors.NotFoundError{Resource: "section", ID: id}
			}
			delete(byID, id)
			next = append(next, section)
		}

		list.Sections = next
		return nil
	})
}

// ToggleCollapsed flips a section's collapse state.
func (s *Store) ToggleCollapsed(listID, sectionID string) error {
	return s.mutate(listID, func(list *packing.PackingList) error {
		section := findSection(list, sectionID)
		if section == nil {
			return &errors.NotFoundError{Resource: "section", ID: sectionID}
		}
		section.Collapsed = !section.Collapsed
		return nil
	})
}

// findSection returns a pointer into the list's sections, or nil.
func findSection(list *packing.PackingList, sectionID string) *packing.PackingSection {
	for i := range list.Sections {
		if list.Sections[i].ID == sectionID {
			return &list.Sections[i]
		}
	}
	return nil
}

// sectionHasName reports whether a section already holds an item with
// the given normalized name.
func sectionHasName(section *packing.PackingSection, name string) bool {
	normalized := canonical.NormalizeName(name)
	for _, item := range section.Items {
		if canonical.NormalizeName(item.Name) == normalized {
			return true
		}
	}
	return false
}
