package policy

import (
	"slices"
	"strings"

	appErrors "github.com/aaravmahajanofficial/agroconnect/internal/errors"
	"github.com/aaravmahajanofficial/agroconnect/internal/models"
)

// Transition is the outcome of applying a target status to a commodity.
// Noop is set when the record already sits in the target state and nothing
// needs to be written.
type Transition struct {
	From   models.CommodityStatus
	To     models.CommodityStatus
	Reason string
	Noop   bool
}

var allowed = map[models.CommodityStatus][]models.CommodityStatus{
	models.CommodityStatusPending:  {models.CommodityStatusApproved, models.CommodityStatusRejected},
	models.CommodityStatusApproved: {models.CommodityStatusRejected, models.CommodityStatusPending},
	models.CommodityStatusRejected: {models.CommodityStatusApproved, models.CommodityStatusRejected, models.CommodityStatusPending},
}

// ApplyTransition validates moving commodity to target and mutates it in place.
// Rejection needs a non-blank reason, every other target clears it.
func ApplyTransition(commodity *models.Commodity, target models.CommodityStatus, reason string) (Transition, error) {
	if !target.Valid() {
		return Transition{}, appErrors.ValidationError("Invalid status value")
	}

	from := commodity.Status
	reason = strings.TrimSpace(reason)

	if target == models.CommodityStatusRejected && reason == "" {
		return Transition{}, appErrors.ValidationError("A rejection reason is required")
	}

	if from == target && target != models.CommodityStatusRejected {
		return Transition{From: from, To: target, Noop: true}, nil
	}

	if !canMove(from, target) {
		return Transition{}, appErrors.ValidationError("Status transition not allowed").
			WithDetail(string(from) + " -> " + string(target))
	}

	commodity.Status = target
	if target == models.CommodityStatusRejected {
		commodity.RejectionReason = reason
	} else {
		commodity.RejectionReason = ""
	}

	return Transition{From: from, To: target, Reason: commodity.RejectionReason}, nil
}

func canMove(from, to models.CommodityStatus) bool {
	return slices.Contains(allowed[from], to)
}

// TargetFor maps a moderation action to the status it produces.
func TargetFor(action models.ModerationAction) (models.CommodityStatus, error) {
	switch action {
	case models.ModerationApprove:
		return models.CommodityStatusApproved, nil
	case models.ModerationReject:
		return models.CommodityStatusRejected, nil
	case models.ModerationRevert:
		return models.CommodityStatusPending, nil
	}

	return "", appErrors.ValidationError("Unknown moderation action")
}
