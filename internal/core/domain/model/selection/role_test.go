package selection_test

import (
	"fmt"
	"testing"

	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/model/selection"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(selection.RoleUnknown))
		assert.Equal(t, 1, int(selection.RoleDesign))
		assert.Equal(t, 2, int(selection.RoleProduction))
		assert.Equal(t, 3, int(selection.RoleMachining))
		assert.Equal(t, 4, int(selection.RoleInspection))
	})
}

func TestRoles(t *testing.T) {
	t.Run("should return the four valid roles in pipeline order", func(t *testing.T) {
		assert.Equal(t, []selection.Role{
			selection.RoleDesign,
			selection.RoleProduction,
			selection.RoleMachining,
			selection.RoleInspection,
		}, selection.Roles())
	})
}

func TestRole_Validate(t *testing.T) {
	t.Run("should validate the four department roles", func(t *testing.T) {
		for _, role := range selection.Roles() {
			require.NoError(t, role.Validate(), "role %s should be valid", role.String())
		}
	})

	t.Run("should reject invalid role values", func(t *testing.T) {
		invalidRoles := []selection.Role{
			selection.RoleUnknown,
			selection.Role(-1),
			selection.Role(5),
		}

		for _, role := range invalidRoles {
			t.Run(fmt.Sprintf("should reject role value %d", int(role)), func(t *testing.T) {
				err := role.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "role is invalid")
			})
		}
	})
}

func TestRoleFromString(t *testing.T) {
	t.Run("should parse valid wire representations", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected selection.Role
		}{
			{"DESIGN", selection.RoleDesign},
			{"PRODUCTION", selection.RoleProduction},
			{"MACHINING", selection.RoleMachining},
			{"INSPECTION", selection.RoleInspection},
		}

		for _, tc := range testCases {
			role, err := selection.RoleFromString(tc.input)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, role)
		}
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		for _, input := range []string{"", "UNKNOWN", "design", "ADMIN"} {
			role, err := selection.RoleFromString(input)

			require.Error(t, err)
			assert.Equal(t, selection.RoleUnknown, role)
			assert.Contains(t, err.Error(), fmt.Sprintf("%q is not a valid role", input))
		}
	})
}

func TestRole_PayloadKey(t *testing.T) {
	t.Run("should return the fixed wire vocabulary keys", func(t *testing.T) {
		testCases := []struct {
			role     selection.Role
			expected string
		}{
			{selection.RoleDesign, "designerSelectedRowIds"},
			{selection.RoleProduction, "productionSelectedRowIds"},
			{selection.RoleMachining, "machineSelectedRowIds"},
			{selection.RoleInspection, "inspectionSelectedRowIds"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.role.PayloadKey())
		}
	})

	t.Run("should return empty key for invalid roles", func(t *testing.T) {
		assert.Empty(t, selection.RoleUnknown.PayloadKey())
	})
}

func TestRole_Department(t *testing.T) {
	t.Run("should map each role to its pipeline stage", func(t *testing.T) {
		testCases := []struct {
			role     selection.Role
			expected order.Status
		}{
			{selection.RoleDesign, order.Design},
			{selection.RoleProduction, order.Production},
			{selection.RoleMachining, order.Machining},
			{selection.RoleInspection, order.Inspection},
		}

		for _, tc := range testCases {
			status, err := tc.role.Department()

			require.NoError(t, err)
			assert.Equal(t, tc.expected, status)
		}
	})

	t.Run("should reject invalid roles", func(t *testing.T) {
		status, err := selection.RoleUnknown.Department()

		require.Error(t, err)
		assert.Equal(t, order.Unknown, status)
	})
}

func TestRoleFromStatus(t *testing.T) {
	t.Run("should round-trip with Department", func(t *testing.T) {
		for _, role := range selection.Roles() {
			status, err := role.Department()
			require.NoError(t, err)

			back, err := selection.RoleFromStatus(status)
			require.NoError(t, err)
			assert.Equal(t, role, back)
		}
	})

	t.Run("should reject statuses without an owning role", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Inquiry, order.Completed} {
			role, err := selection.RoleFromStatus(status)

			require.Error(t, err)
			assert.Equal(t, selection.RoleUnknown, role)
			assert.Contains(t, err.Error(), "is not a department stage")
		}
	})
}

func TestCategory_Validate(t *testing.T) {
	t.Run("should validate valid categories", func(t *testing.T) {
		for _, category := range []selection.Category{
			selection.CategoryGeneral,
			selection.CategoryParts,
			selection.CategoryMaterial,
		} {
			require.NoError(t, category.Validate())
		}
	})

	t.Run("should reject invalid categories", func(t *testing.T) {
		for _, category := range []selection.Category{
			selection.CategoryUnknown,
			selection.Category(-1),
			selection.Category(4),
		} {
			err := category.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), "category is invalid")
		}
	})
}

func TestCategoryFromString(t *testing.T) {
	t.Run("should parse valid wire representations", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected selection.Category
		}{
			{"general", selection.CategoryGeneral},
			{"parts", selection.CategoryParts},
			{"material", selection.CategoryMaterial},
		}

		for _, tc := range testCases {
			category, err := selection.CategoryFromString(tc.input)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, category)
		}
	})

	t.Run("should round-trip through String", func(t *testing.T) {
		for _, category := range []selection.Category{
			selection.CategoryGeneral,
			selection.CategoryParts,
			selection.CategoryMaterial,
		} {
			parsed, err := selection.CategoryFromString(category.String())

			require.NoError(t, err)
			assert.Equal(t, category, parsed)
		}
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		for _, input := range []string{"", "GENERAL", "unknown", "plates"} {
			category, err := selection.CategoryFromString(input)

			require.Error(t, err)
			assert.Equal(t, selection.CategoryUnknown, category)
			assert.Contains(t, err.Error(), fmt.Sprintf("%q is not a valid category", input))
		}
	})
}
