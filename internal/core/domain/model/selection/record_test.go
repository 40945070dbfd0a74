package selection_test

import (
	"testing"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/selection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	t.Run("should create empty record with valid parameters", func(t *testing.T) {
		orderID := kernel.NewUUID()

		record, err := selection.NewRecord(orderID, selection.CategoryGeneral)

		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, orderID, record.OrderID())
		assert.Equal(t, selection.CategoryGeneral, record.Category())
		for _, role := range selection.Roles() {
			assert.True(t, record.IsEmpty(role), "role %s should start empty", role.String())
		}
	})

	t.Run("should reject zero-value order id", func(t *testing.T) {
		record, err := selection.NewRecord(kernel.UUID{}, selection.CategoryGeneral)

		require.Error(t, err)
		assert.Nil(t, record)
	})

	t.Run("should reject invalid category", func(t *testing.T) {
		record, err := selection.NewRecord(kernel.NewUUID(), selection.CategoryUnknown)

		require.Error(t, err)
		assert.Nil(t, record)
	})
}

func TestRestoreRecord(t *testing.T) {
	t.Run("should restore persisted role sets", func(t *testing.T) {
		record, err := selection.RestoreRecord(kernel.NewUUID(), selection.CategoryParts, map[selection.Role][]string{
			selection.RoleDesign:    {"1", "2"},
			selection.RoleMachining: {"3"},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2"}, record.IDs(selection.RoleDesign))
		assert.Equal(t, []string{"3"}, record.IDs(selection.RoleMachining))
		assert.True(t, record.IsEmpty(selection.RoleProduction))
		assert.True(t, record.IsEmpty(selection.RoleInspection))
	})

	t.Run("should reject ids stored under an invalid role", func(t *testing.T) {
		record, err := selection.RestoreRecord(kernel.NewUUID(), selection.CategoryGeneral, map[selection.Role][]string{
			selection.RoleUnknown: {"1"},
		})

		require.Error(t, err)
		assert.Nil(t, record)
	})
}

func TestRecord_Validate(t *testing.T) {
	t.Run("should reject record not created via constructor", func(t *testing.T) {
		var nilRecord *selection.Record
		assert.ErrorIs(t, nilRecord.Validate(), selection.ErrRecordIsNotConstructed)
		assert.ErrorIs(t, (&selection.Record{}).Validate(), selection.ErrRecordIsNotConstructed)
	})
}

func TestRecord_Toggle(t *testing.T) {
	t.Run("should select and clear one row for the acting role", func(t *testing.T) {
		record, err := selection.NewRecord(kernel.NewUUID(), selection.CategoryGeneral)
		require.NoError(t, err)

		require.NoError(t, record.Toggle(selection.RoleDesign, "5", true))
		assert.True(t, record.IsSelected(selection.RoleDesign, "5"))

		require.NoError(t, record.Toggle(selection.RoleDesign, "5", false))
		assert.False(t, record.IsSelected(selection.RoleDesign, "5"))
	})

	t.Run("should never touch another role's set", func(t *testing.T) {
		record, err := selection.NewRecord(kernel.NewUUID(), selection.CategoryGeneral)
		require.NoError(t, err)

		require.NoError(t, record.Toggle(selection.RoleDesign, "5", true))
		require.NoError(t, record.Toggle(selection.RoleProduction, "5", true))
		require.NoError(t, record.Toggle(selection.RoleProduction, "5", false))

		assert.True(t, record.IsSelected(selection.RoleDesign, "5"))
		assert.False(t, record.IsSelected(selection.RoleProduction, "5"))
	})

	t.Run("should reject an invalid acting role", func(t *testing.T) {
		record, err := selection.NewRecord(kernel.NewUUID(), selection.CategoryGeneral)
		require.NoError(t, err)

		err = record.Toggle(selection.RoleUnknown, "5", true)

		assert.ErrorIs(t, err, selection.ErrNotActingRole)
		for _, role := range selection.Roles() {
			assert.True(t, record.IsEmpty(role))
		}
	})
}

func TestRecord_SelectAllAndClearAll(t *testing.T) {
	t.Run("should select all visible ids for the acting role only", func(t *testing.T) {
		record, err := selection.NewRecord(kernel.NewUUID(), selection.CategoryGeneral)
		require.NoError(t, err)

		visible := []string{"1", "2", "3"}
		require.NoError(t, record.SelectAll(selection.RoleMachining, visible))

		assert.Equal(t, visible, record.IDs(selection.RoleMachining))
		assert.True(t, record.IsEmpty(selection.RoleDesign))
	})

	t.Run("should clear only the visible ids", func(t *testing.T) {
		record, err := selection.NewRecord(kernel.NewUUID(), selection.CategoryGeneral)
		require.NoError(t, err)
		require.NoError(t, record.SelectAll(selection.RoleMachining, []string{"1", "2", "3"}))

		require.NoError(t, record.ClearAll(selection.RoleMachining, []string{"1", "3"}))

		assert.Equal(t, []string{"2"}, record.IDs(selection.RoleMachining))
	})

	t.Run("should leave other roles' selections intact when clearing", func(t *testing.T) {
		record, err := selection.NewRecord(kernel.NewUUID(), selection.CategoryGeneral)
		require.NoError(t, err)
		require.NoError(t, record.SelectAll(selection.RoleDesign, []string{"1", "2"}))
		require.NoError(t, record.SelectAll(selection.RoleInspection, []string{"1", "2"}))

		require.NoError(t, record.ClearAll(selection.RoleInspection, []string{"1", "2"}))

		assert.Equal(t, []string{"1", "2"}, record.IDs(selection.RoleDesign))
		assert.True(t, record.IsEmpty(selection.RoleInspection))
	})

	t.Run("should reject an invalid acting role", func(t *testing.T) {
		record, err := selection.NewRecord(kernel.NewUUID(), selection.CategoryGeneral)
		require.NoError(t, err)

		assert.ErrorIs(t, record.SelectAll(selection.RoleUnknown, []string{"1"}), selection.ErrNotActingRole)
		assert.ErrorIs(t, record.ClearAll(selection.RoleUnknown, []string{"1"}), selection.ErrNotActingRole)
	})
}

func TestRecord_ReplaceRole(t *testing.T) {
	t.Run("should replace the acting role's whole set", func(t *testing.T) {
		record, err := selection.NewRecord(kernel.NewUUID(), selection.CategoryMaterial)
		require.NoError(t, err)
		require.NoError(t, record.SelectAll(selection.RoleProduction, []string{"1", "2", "3"}))

		require.NoError(t, record.ReplaceRole(selection.RoleProduction, []string{"7", "9"}))

		assert.Equal(t, []string{"7", "9"}, record.IDs(selection.RoleProduction))
	})

	t.Run("should leave other roles untouched", func(t *testing.T) {
		record, err := selection.NewRecord(kernel.NewUUID(), selection.CategoryMaterial)
		require.NoError(t, err)
		require.NoError(t, record.SelectAll(selection.RoleDesign, []string{"1"}))

		require.NoError(t, record.ReplaceRole(selection.RoleProduction, []string{"9"}))

		assert.Equal(t, []string{"1"}, record.IDs(selection.RoleDesign))
	})

	t.Run("should allow replacing with an empty set", func(t *testing.T) {
		record, err := selection.NewRecord(kernel.NewUUID(), selection.CategoryMaterial)
		require.NoError(t, err)
		require.NoError(t, record.SelectAll(selection.RoleDesign, []string{"1", "2"}))

		require.NoError(t, record.ReplaceRole(selection.RoleDesign, nil))

		assert.True(t, record.IsEmpty(selection.RoleDesign))
	})

	t.Run("should reject an invalid acting role", func(t *testing.T) {
		record, err := selection.NewRecord(kernel.NewUUID(), selection.CategoryMaterial)
		require.NoError(t, err)

		assert.ErrorIs(t, record.ReplaceRole(selection.RoleUnknown, []string{"1"}), selection.ErrNotActingRole)
	})
}

func TestRecord_IDs(t *testing.T) {
	t.Run("should return a sorted copy", func(t *testing.T) {
		record, err := selection.NewRecord(kernel.NewUUID(), selection.CategoryGeneral)
		require.NoError(t, err)
		require.NoError(t, record.SelectAll(selection.RoleDesign, []string{"b", "c", "a"}))

		ids := record.IDs(selection.RoleDesign)
		assert.Equal(t, []string{"a", "b", "c"}, ids)

		ids[0] = "mutated"
		assert.Equal(t, []string{"a", "b", "c"}, record.IDs(selection.RoleDesign),
			"mutating the returned slice should not affect the record")
	})

	t.Run("should return nil for an invalid role", func(t *testing.T) {
		record, err := selection.NewRecord(kernel.NewUUID(), selection.CategoryGeneral)
		require.NoError(t, err)

		assert.Nil(t, record.IDs(selection.RoleUnknown))
	})
}
