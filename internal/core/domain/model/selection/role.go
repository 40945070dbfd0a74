package selection

import (
	"fmt"

	"workshop/internal/core/domain/model/order"
	"workshop/internal/pkg/errs"
)

// Role identifies the department a user acts for. A role is both an order's
// pipeline stage and a user's permission scope over its own sub-selection.
//
// Role is always passed explicitly into core operations as part of the
// request context; it is never ambient state.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleDesign is the design department.
	RoleDesign

	// RoleProduction is the production department.
	RoleProduction

	// RoleMachining is the machining department.
	RoleMachining

	// RoleInspection is the inspection department.
	RoleInspection
)

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:    "UNKNOWN",
		RoleDesign:     "DESIGN",
		RoleProduction: "PRODUCTION",
		RoleMachining:  "MACHINING",
		RoleInspection: "INSPECTION",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleDesign:     "DESIGN",
		RoleProduction: "PRODUCTION",
		RoleMachining:  "MACHINING",
		RoleInspection: "INSPECTION",
	}
}

// getRolePayloadKeys maps each role to the persistence payload key its
// selected row ids travel under. The keys are fixed wire vocabulary.
func getRolePayloadKeys() map[Role]string {
	//nolint:exhaustive // RoleUnknown carries no payload key
	return map[Role]string{
		RoleDesign:     "designerSelectedRowIds",
		RoleProduction: "productionSelectedRowIds",
		RoleMachining:  "machineSelectedRowIds",
		RoleInspection: "inspectionSelectedRowIds",
	}
}

// Roles returns the four valid roles in pipeline order.
func Roles() []Role {
	return []Role{RoleDesign, RoleProduction, RoleMachining, RoleInspection}
}

// RoleFromString parses a role from its wire representation.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role", s))
}

// RoleFromStatus maps a department pipeline stage to the role that owns it.
// Inquiry and Completed have no owning role.
func RoleFromStatus(s order.Status) (Role, error) {
	switch s {
	case order.Design:
		return RoleDesign, nil
	case order.Production:
		return RoleProduction, nil
	case order.Machining:
		return RoleMachining, nil
	case order.Inspection:
		return RoleInspection, nil
	default:
		return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
			"role is invalid",
			fmt.Errorf("%s is not a department stage", s.String()),
		)
	}
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire representation of the role. Implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// PayloadKey returns the persistence payload key for the role's selected row
// ids ("designerSelectedRowIds" and friends). Empty for invalid roles.
func (r Role) PayloadKey() string {
	return getRolePayloadKeys()[r]
}

// Department returns the pipeline stage owned by the role.
func (r Role) Department() (order.Status, error) {
	switch r {
	case RoleDesign:
		return order.Design, nil
	case RoleProduction:
		return order.Production, nil
	case RoleMachining:
		return order.Machining, nil
	case RoleInspection:
		return order.Inspection, nil
	default:
		return order.Unknown, r.Validate()
	}
}
