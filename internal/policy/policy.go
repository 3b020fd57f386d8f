// Package policy holds the visibility and authorization rules for commodities.
// Every function here is pure: callers load the record, ask for a decision and
// only then touch the store.
package policy

import (
	"slices"

	appErrors "github.com/aaravmahajanofficial/agroconnect/internal/errors"
	"github.com/aaravmahajanofficial/agroconnect/internal/models"
)

type Operation string

const (
	OpReadOwnList     Operation = "read_own_list"
	OpReadMarketplace Operation = "read_marketplace"
	OpReadOne         Operation = "read_one"
	OpCreate          Operation = "create"
	OpUpdate          Operation = "update"
	OpChangeStatus    Operation = "change_status"
	OpDelete          Operation = "delete"
	OpUploadImage     Operation = "upload_image"
)

const (
	forbiddenMessage = "You are not allowed to perform this action"
	notFoundMessage  = "Commodity not found"
)

// FarmerEditableFields is the set a non-admin owner may patch.
var FarmerEditableFields = []string{"in_stock", "price_per_unit", "quantity", "description"}

func Forbidden() *appErrors.AppError {
	return appErrors.ForbiddenError(forbiddenMessage)
}

func CommodityNotFound() *appErrors.AppError {
	return appErrors.NotFoundError(notFoundMessage)
}

// CanAccess decides whether caller may run op. commodity is nil for the
// operations that do not target a single record.
func CanAccess(caller *models.Caller, op Operation, commodity *models.Commodity) error {
	switch op {
	case OpReadMarketplace:
		return nil

	case OpReadOne:
		return canRead(caller, commodity)

	case OpReadOwnList:
		if !caller.IsActive() {
			return Forbidden()
		}
		if caller.Role == models.RoleFarmer || caller.IsAdmin() {
			return nil
		}

		return Forbidden()

	case OpCreate:
		if caller.IsActive() && caller.Role == models.RoleFarmer {
			return nil
		}

		return Forbidden()

	case OpUploadImage:
		if caller.IsActive() && (caller.Role == models.RoleFarmer || caller.IsAdmin()) {
			return nil
		}

		return Forbidden()

	case OpChangeStatus:
		if caller.IsActive() && caller.IsAdmin() {
			return nil
		}

		return Forbidden()

	case OpUpdate, OpDelete:
		if !caller.IsActive() || commodity == nil {
			return Forbidden()
		}
		if caller.IsAdmin() {
			return nil
		}
		if caller.Role == models.RoleFarmer && commodity.IsOwnedBy(caller.ID) {
			return nil
		}

		return Forbidden()
	}

	return Forbidden()
}

// canRead hides non-approved records from everyone except their owner and admins.
// The answer for a hidden record is the same as for an unknown id.
func canRead(caller *models.Caller, commodity *models.Commodity) error {
	if commodity == nil {
		return CommodityNotFound()
	}

	if commodity.Status == models.CommodityStatusApproved {
		return nil
	}

	if caller == nil {
		return CommodityNotFound()
	}

	if caller.IsAdmin() || commodity.IsOwnedBy(caller.ID) {
		return nil
	}

	return CommodityNotFound()
}

// CheckPatch rejects patches that touch fields the caller may not change.
// A rejected field fails the whole request.
func CheckPatch(caller *models.Caller, commodity *models.Commodity, patch *models.UpdateCommodityRequest) error {
	if err := CanAccess(caller, OpUpdate, commodity); err != nil {
		return err
	}

	if caller.IsAdmin() {
		return nil
	}

	for _, field := range patch.TouchedFields() {
		if !slices.Contains(FarmerEditableFields, field) {
			return Forbidden().WithDetail("field '" + field + "' cannot be changed")
		}
	}

	return nil
}
