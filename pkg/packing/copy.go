package packing

// DeepCopyList creates a deep copy of a packing list, including all
// sections and items. IDs are preserved; use store.SaveAsTemplate for
// clones with fresh identity.
func DeepCopyList(list PackingList) PackingList {
	result := list
	result.Sections = DeepCopySections(list.Sections)
	return result
}

// DeepCopySections creates a deep copy of a section slice.
// Returns nil if the input slice is nil.
func DeepCopySections(sections []PackingSection) []PackingSection {
	if sections == nil {
		return nil
	}

	result := make([]PackingSection, len(sections))
	for i, section := range sections {
		sectionCopy := section
		if section.Items != nil {
			sectionCopy.Items = make([]PackingItem, len(section.Items))
			copy(sectionCopy.Items, section.Items)
		}
		result[i] = sectionCopy
	}
	return result
}

// DeepCopyLists creates a deep copy of a slice of packing lists.
// Returns nil if the input slice is nil.
func DeepCopyLists(lists []PackingList) []PackingList {
	if lists == nil {
		return nil
	}

	result := make([]PackingList, len(lists))
	for i, list := range lists {
		result[i] = DeepCopyList(list)
	}
	return result
}
