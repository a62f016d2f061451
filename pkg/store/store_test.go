package store_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/internal/storage"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/errors"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/logging"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/packing"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/store"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/tripctx"
)

func newStore(t *testing.T) (*store.Store, *storage.Memory) {
	t.Helper()
	repo := storage.NewMemory()
	s, err := store.New(repo,
		store.WithSynchronousSaves(),
		store.WithLogger(logging.NewNopLogger()),
	)
	require.NoError(t, err)
	return s, repo
}

func createList(t *testing.T, s *store.Store, keys ...string) string {
	t.Helper()
	start := time.Date(2026, time.June, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.June, 7, 0, 0, 0, 0, time.UTC)
	id, err := s.CreatePackingList(store.CreateParams{
		Name:         "Test trip",
		TripType:     "car_camping",
		Trip:         tripctx.Trip{Start: &start, End: &end},
		TemplateKeys: keys,
	})
	require.NoError(t, err)
	return id
}

func TestCreatePackingListWithTemplates(t *testing.T) {
	s, repo := newStore(t)

	id := createList(t, s, "essential")
	list, err := s.Get(id)
	require.NoError(t, err)

	assert.Equal(t, "Test trip", list.Name)
	assert.Equal(t, packing.Summer, list.Season)
	assert.False(t, list.IsTemplate)
	assert.NotEmpty(t, list.Sections)
	assert.Equal(t, 1, repo.Saves())

	// Generated items carry the template source.
	section, ok := list.Section("Shelter")
	require.True(t, ok)
	require.NotEmpty(t, section.Items)
	assert.Equal(t, packing.SourceTemplate, section.Items[0].Source)
}

func TestCreatePackingListDefaultSkeleton(t *testing.T) {
	s, _ := newStore(t)

	id, err := s.CreatePackingList(store.CreateParams{TripType: "cabin"})
	require.NoError(t, err)

	list, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Cabin Packing List", list.Name)
	require.Len(t, list.Sections, 11)
	for _, section := range list.Sections {
		assert.Empty(t, section.Items)
	}
}

func TestCreatePackingListUnknownKeysDegrade(t *testing.T) {
	s, _ := newStore(t)

	id, err := s.CreatePackingList(store.CreateParams{
		Name:         "Trip",
		TemplateKeys: []string{"not_a_template"},
	})
	require.NoError(t, err, "unknown template keys must not fail")

	list, err := s.Get(id)
	require.NoError(t, err)
	// All selected keys were unknown, so generation had no templates
	// and every section is empty.
	for _, section := range list.Sections {
		assert.Empty(t, section.Items)
	}
}

func TestCreatePackingListSeasonOverride(t *testing.T) {
	s, _ := newStore(t)

	id, err := s.CreatePackingList(store.CreateParams{
		Name:         "Trip",
		Season:       packing.Winter,
		TemplateKeys: []string{"essential", "winter"},
	})
	require.NoError(t, err)

	list, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, packing.Winter, list.Season)
}

func TestGetUnknownList(t *testing.T) {
	s, _ := newStore(t)
	_, err := s.Get("missing")
	assert.True(t, errors.IsNotFound(err))
}

func TestGetReturnsCopy(t *testing.T) {
	s, _ := newStore(t)
	id := createList(t, s, "essential")

	list, err := s.Get(id)
	require.NoError(t, err)
	list.Sections[0].Items[0].Name = "Mutated"

	fresh, err := s.Get(id)
	require.NoError(t, err)
	assert.NotEqual(t, "Mutated", fresh.Sections[0].Items[0].Name,
		"mutating a returned list must not affect the store")
}

func TestDeleteList(t *testing.T) {
	s, _ := newStore(t)
	id := createList(t, s)

	require.NoError(t, s.DeleteList(id))
	_, err := s.Get(id)
	assert.True(t, errors.IsNotFound(err))

	assert.True(t, errors.IsNotFound(s.DeleteList(id)))
}

func TestSectionCRUD(t *testing.T) {
	s, _ := newStore(t)
	id := createList(t, s)

	secID, err := s.AddSection(id, "Fishing Gear")
	require.NoError(t, err)

	t.Run("duplicate title rejected", func(t *testing.T) {
		_, err := s.AddSection(id, "Fishing Gear")
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("rename", func(t *testing.T) {
		require.NoError(t, s.RenameSection(id, secID, "Fly Fishing"))
		list, err := s.Get(id)
		require.NoError(t, err)
		_, ok := list.Section("Fly Fishing")
		assert.True(t, ok)
	})

	t.Run("rename to existing title rejected", func(t *testing.T) {
		err := s.RenameSection(id, secID, "Shelter")
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("rename to own title is a no-op", func(t *testing.T) {
		assert.NoError(t, s.RenameSection(id, secID, "Fly Fishing"))
	})

	t.Run("toggle collapsed", func(t *testing.T) {
		require.NoError(t, s.ToggleCollapsed(id, secID))
		list, err := s.Get(id)
		require.NoError(t, err)
		section, _ := list.Section("Fly Fishing")
		assert.True(t, section.Collapsed)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.DeleteSection(id, secID))
		list, err := s.Get(id)
		require.NoError(t, err)
		_, ok := list.Section("Fly Fishing")
		assert.False(t, ok)
	})

	t.Run("unknown section", func(t *testing.T) {
		assert.True(t, errors.IsNotFound(s.DeleteSection(id, "nope")))
		assert.True(t, errors.IsNotFound(s.ToggleCollapsed(id, "nope")))
	})
}

func TestReorderSections(t *testing.T) {
	s, _ := newStore(t)
	id := createList(t, s)

	list, err := s.Get(id)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(list.Sections), 2)

	ids := make([]string, len(list.Sections))
	for i, section := range list.Sections {
		ids[i] = section.ID
	}
	// Reverse the order.
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}

	require.NoError(t, s.ReorderSections(id, ids))

	reordered, err := s.Get(id)
	require.NoError(t, err)
	for i, section := range reordered.Sections {
		assert.Equal(t, ids[i], section.ID)
	}

	t.Run("wrong cardinality rejected", func(t *testing.T) {
		err := s.ReorderSections(id, ids[:1])
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("unknown id rejected", func(t *testing.T) {
		bad := append([]string{}, ids...)
		bad[0] = "nope"
		assert.Error(t, s.ReorderSections(id, bad))
	})
}

func TestItemCRUD(t *testing.T) {
	s, _ := newStore(t)
	id := createList(t, s)

	list, err := s.Get(id)
	require.NoError(t, err)
	secID := list.Sections[0].ID

	itemID, err := s.AddItem(id, secID, store.ItemParams{Name: "Hammock", Note: "between the pines"})
	require.NoError(t, err)

	t.Run("duplicate name in section rejected", func(t *testing.T) {
		_, err := s.AddItem(id, secID, store.ItemParams{Name: " HAMMOCK "})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("custom source and default quantity", func(t *testing.T) {
		list, err := s.Get(id)
		require.NoError(t, err)
		item := findItemByID(t, list, itemID)
		assert.Equal(t, packing.SourceCustom, item.Source)
		assert.Equal(t, 1, item.Quantity)
		assert.Equal(t, "between the pines", item.Note)
	})

	t.Run("update", func(t *testing.T) {
		name := "Double hammock"
		essential := true
		qty := 2
		require.NoError(t, s.UpdateItem(id, itemID, store.ItemUpdate{
			Name:      &name,
			Essential: &essential,
			Quantity:  &qty,
		}))

		list, err := s.Get(id)
		require.NoError(t, err)
		item := findItemByID(t, list, itemID)
		assert.Equal(t, "Double hammock", item.Name)
		assert.True(t, item.Essential)
		assert.Equal(t, 2, item.Quantity)
	})

	t.Run("toggle checked", func(t *testing.T) {
		require.NoError(t, s.ToggleChecked(id, itemID))
		list, err := s.Get(id)
		require.NoError(t, err)
		assert.True(t, findItemByID(t, list, itemID).Checked)
	})

	t.Run("duplicate", func(t *testing.T) {
		dupID, err := s.DuplicateItem(id, itemID)
		require.NoError(t, err)

		list, err := s.Get(id)
		require.NoError(t, err)
		duplicate := findItemByID(t, list, dupID)
		assert.Equal(t, "Double hammock (copy)", duplicate.Name)
		assert.False(t, duplicate.Checked, "duplicates start unchecked")
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.DeleteItem(id, itemID))
		assert.True(t, errors.IsNotFound(s.ToggleChecked(id, itemID)))
	})

	t.Run("unknown item", func(t *testing.T) {
		assert.True(t, errors.IsNotFound(s.DeleteItem(id, "nope")))
	})
}

func TestBulkCheck(t *testing.T) {
	s, _ := newStore(t)
	id := createList(t, s, "essential")

	require.NoError(t, s.CheckAllItems(id))
	progress, err := s.Progress(id)
	require.NoError(t, err)
	assert.Equal(t, progress.Total, progress.Packed)
	assert.Equal(t, 100, progress.Percentage)

	require.NoError(t, s.UncheckAllItems(id))
	progress, err = s.Progress(id)
	require.NoError(t, err)
	assert.Equal(t, 0, progress.Packed)
	assert.Equal(t, 0, progress.Percentage)
}

func TestProgressEmptyList(t *testing.T) {
	s, _ := newStore(t)
	id, err := s.CreatePackingList(store.CreateParams{Name: "Empty"})
	require.NoError(t, err)

	progress, err := s.Progress(id)
	require.NoError(t, err)
	assert.Equal(t, packing.Progress{}, progress)
}

func TestSaveAsTemplate(t *testing.T) {
	s, _ := newStore(t)
	id := createList(t, s, "essential")
	require.NoError(t, s.CheckAllItems(id))

	tmplID, err := s.SaveAsTemplate(id, "My base kit")
	require.NoError(t, err)
	require.NotEqual(t, id, tmplID)

	tmpl, err := s.Get(tmplID)
	require.NoError(t, err)
	assert.True(t, tmpl.IsTemplate)
	assert.Empty(t, tmpl.TripID)
	assert.Equal(t, "My base kit", tmpl.Name)

	original, err := s.Get(id)
	require.NoError(t, err)

	// Fresh identity, unchecked items, same shape.
	require.Len(t, tmpl.Sections, len(original.Sections))
	for i, section := range tmpl.Sections {
		assert.NotEqual(t, original.Sections[i].ID, section.ID)
		require.Len(t, section.Items, len(original.Sections[i].Items))
		for j, item := range section.Items {
			assert.NotEqual(t, original.Sections[i].Items[j].ID, item.ID)
			assert.False(t, item.Checked)
			assert.Equal(t, original.Sections[i].Items[j].Name, item.Name)
		}
	}
}

func TestCopyTemplateToTrip(t *testing.T) {
	s, _ := newStore(t)
	id := createList(t, s, "essential")

	tmplID, err := s.SaveAsTemplate(id, "Base kit")
	require.NoError(t, err)

	tripListID, err := s.CopyTemplateToTrip(tmplID, "trip-99")
	require.NoError(t, err)

	tripList, err := s.Get(tripListID)
	require.NoError(t, err)
	assert.False(t, tripList.IsTemplate)
	assert.Equal(t, "trip-99", tripList.TripID)
}

func TestToggleTemplateStatus(t *testing.T) {
	s, _ := newStore(t)
	id := createList(t, s)

	require.NoError(t, s.ToggleTemplateStatus(id))
	list, err := s.Get(id)
	require.NoError(t, err)
	assert.True(t, list.IsTemplate)

	require.NoError(t, s.ToggleTemplateStatus(id))
	list, err = s.Get(id)
	require.NoError(t, err)
	assert.False(t, list.IsTemplate)
}

func TestMutationStampsUpdatedAt(t *testing.T) {
	s, _ := newStore(t)
	id := createList(t, s)

	before, err := s.Get(id)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	_, err = s.AddSection(id, "Extras")
	require.NoError(t, err)

	after, err := s.Get(id)
	require.NoError(t, err)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt),
		"mutations must stamp UpdatedAt")
}

func TestFailedMutationLeavesStateUntouched(t *testing.T) {
	s, repo := newStore(t)
	id := createList(t, s)
	saves := repo.Saves()

	_, err := s.AddSection(id, "Shelter") // duplicate title
	require.Error(t, err)

	assert.Equal(t, saves, repo.Saves(), "failed mutations must not persist")
}

func TestPersistenceFailureIsNonFatal(t *testing.T) {
	repo := storage.NewMemory()
	repo.FailSaves = fmt.Errorf("disk full")

	logger := logging.NewTestLogger(t)
	s, err := store.New(repo,
		store.WithSynchronousSaves(),
		store.WithLogger(logger.Logger),
	)
	require.NoError(t, err)

	id, err := s.CreatePackingList(store.CreateParams{Name: "Trip"})
	require.NoError(t, err, "save failures must not surface to callers")

	// In-memory state stays authoritative.
	_, err = s.Get(id)
	assert.NoError(t, err)
	logger.AssertContains(t, "Failed to persist")
}

func TestLoadsPersistedState(t *testing.T) {
	repo := storage.NewMemory()
	require.NoError(t, repo.Save([]packing.PackingList{{ID: "pl-1", Name: "Saved"}}))

	s, err := store.New(repo, store.WithSynchronousSaves())
	require.NoError(t, err)

	list, err := s.Get("pl-1")
	require.NoError(t, err)
	assert.Equal(t, "Saved", list.Name)
}

func findItemByID(t *testing.T, list packing.PackingList, itemID string) packing.PackingItem {
	t.Helper()
	for _, section := range list.Sections {
		for _, item := range section.Items {
			if item.ID == itemID {
				return item
			}
		}
	}
	t.Fatalf("item %s not found", itemID)
	return packing.PackingItem{}
}
