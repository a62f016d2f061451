package store

import (
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/errors"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/packing"
)

// ItemParams describe a manually added item. Callers are responsible
// for pre-checking name collisions against the rest of the list; the
// store only rejects a duplicate within the target section.
type ItemParams struct {
	Name      string
	Note      string
	Essential bool
	Quantity  int
}

// ItemUpdate carries partial updates for an item; nil fields are left
// unchanged.
type ItemUpdate struct {
	Name      *string
	Note      *string
	Essential *bool
	Quantity  *int
	Checked   *bool
}

// AddItem appends a custom item to a section and returns its id.
func (s *Store) AddItem(listID, sectionID string, params ItemParams) (string, error) {
	if params.Name == "" {
		return "", &errors.ValidationError{Field: "name", Message: "cannot be empty"}
	}

	quantity := params.Quantity
	if quantity < 1 {
		quantity = 1
	}

	id := packing.NewID("item")
	err := s.mutate(listID, func(list *packing.PackingList) error {
		section := findSection(list, sectionID)
		if section == nil {
			return &errors.NotFoundError{Resource: "section", ID: sectionID}
		}
		if sectionHasName(section, params.Name) {
			return &errors.ValidationError{Field: "name", Value: params.Name, Message: "item already exists in section"}
		}

		section.Items = append(section.Items, packing.PackingItem{
			ID:        id,
			Name:      params.Name,
			Note:      params.Note,
			Essential: params.Essential,
			Quantity:  quantity,
			Source:    packing.SourceCustom,
		})
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// UpdateItem applies a partial update to an item anywhere in the list.
func (s *Store) UpdateItem(listID, itemID string, update ItemUpdate) error {
	return s.mutate(listID, func(list *packing.PackingList) error {
		item := findItem(list, itemID)
		if item == nil {
			return &errors.NotFoundError{Resource: "item", ID: itemID}
		}

		if update.Name != nil {
			if *update.Name == "" {
				return &errors.ValidationError{Field: "name", Message: "cannot be empty"}
			}
			item.Name = *update.Name
		}
		if update.Note != nil {
			item.Note = *update.Note
		}
		if update.Essential != nil {
			item.Essential = *update.Essential
		}
		if update.Quantity != nil && *update.Quantity >= 1 {
			item.Quantity = *update.Quantity
		}
		if update.Checked != nil {
			item.Checked = *update.Checked
		}
		return nil
	})
}

// DeleteItem removes an item from whichever section holds it.
func (s *Store) DeleteItem(listID, itemID string) error {
	return s.mutate(listID, func(list *packing.PackingList) error {
		for i := range list.Sections {
			items := list.Sections[i].Items
			for j := range items {
				if items[j].ID == itemID {
					list.Sections[i].Items = append(items[:j], items[j+1:]...)
					return nil
				}
			}
		}
		return &errors.NotFoundError{Resource: "item", ID: itemID}
	})
}

// ToggleChecked flips an item's packed state.
func (s *Store) ToggleChecked(listID, itemID string) error {
	return s.mutate(listID, func(list *packing.PackingList) error {
		item := findItem(list, itemID)
		if item == nil {
			return &errors.NotFoundError{Resource: "item", ID: itemID}
		}
		item.Checked = !item.Checked
		return nil
	})
}

// DuplicateItem clones an item into its own section with a fresh id,
// unchecked, and a " (copy)" suffix so the section never ends up with
// two items sharing a normalized name.
func (s *Store) DuplicateItem(listID, itemID string) (string, error) {
	id := packing.NewID("item")
	err := s.mutate(listID, func(list *packing.PackingList) error {
		for i := range list.Sections {
			section := &list.Sections[i]
			for _, item := range section.Items {
				if item.ID != itemID {
					continue
				}

				duplicate := item
				duplicate.ID = id
				duplicate.Checked = false
				duplicate.Name = copyName(section, item.Name)
				section.Items = append(section.Items, duplicate)
				return nil
			}
		}
		return &errors.NotFoundError{Resource: "item", ID: itemID}
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// CheckAllItems marks every item in a list as packed.
func (s *Store) CheckAllItems(listID string) error {
	return s.setAllChecked(listID, true)
}

// UncheckAllItems marks every item in a list as unpacked.
func (s *Store) UncheckAllItems(listID string) error {
	return s.setAllChecked(listID, false)
}

func (s *Store) setAllChecked(listID string, checked bool) error {
	return s.mutate(listID, func(list *packing.PackingList) error {
		for i := range list.Sections {
			for j := range list.Sections[i].Items {
				list.Sections[i].Items[j].Checked = checked
			}
		}
		return nil
	})
}

// findItem returns a pointer into the list's items, or nil.
func findItem(list *packing.PackingList, itemID string) *packing.PackingItem {
	for i := range list.Sections {
		for j := range list.Sections[i].Items {
			if list.Sections[i].Items[j].ID == itemID {
				return &list.Sections[i].Items[j]
			}
		}
	}
	return nil
}

// copyName appends " (copy)" suffixes until the name is unique within
// the section.
func copyName(section *packing.PackingSection, name string) string {
	candidate := name + " (copy)"
	for sectionHasName(section, candidate) {
		candidate += " (copy)"
	}
	return candidate
}
