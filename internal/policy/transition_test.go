package policy

import (
	"testing"

	appErrors "github.com/aaravmahajanofficial/agroconnect/internal/errors"
	"github.com/aaravmahajanofficial/agroconnect/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyTransition(t *testing.T) {
	tests := []struct {
		name       string
		from       models.CommodityStatus
		oldReason  string
		to         models.CommodityStatus
		reason     string
		wantReason string
		wantNoop   bool
		wantErr    bool
	}{
		{name: "pending to approved", from: models.CommodityStatusPending, to: models.CommodityStatusApproved},
		{name: "pending to approved clears stale reason", from: models.CommodityStatusPending, oldReason: "old", to: models.CommodityStatusApproved},
		{name: "rejected to approved", from: models.CommodityStatusRejected, oldReason: "blurry", to: models.CommodityStatusApproved},
		{name: "pending to rejected", from: models.CommodityStatusPending, to: models.CommodityStatusRejected, reason: "  blurry photo ", wantReason: "blurry photo"},
		{name: "approved to rejected", from: models.CommodityStatusApproved, to: models.CommodityStatusRejected, reason: "stale", wantReason: "stale"},
		{name: "rejected to rejected replaces reason", from: models.CommodityStatusRejected, oldReason: "a", to: models.CommodityStatusRejected, reason: "b", wantReason: "b"},
		{name: "approved to pending", from: models.CommodityStatusApproved, to: models.CommodityStatusPending},
		{name: "rejected to pending clears reason", from: models.CommodityStatusRejected, oldReason: "x", to: models.CommodityStatusPending},
		{name: "approved to approved is a no-op", from: models.CommodityStatusApproved, to: models.CommodityStatusApproved, wantNoop: true},
		{name: "pending to pending is a no-op", from: models.CommodityStatusPending, to: models.CommodityStatusPending, wantNoop: true},
		{name: "reject without reason", from: models.CommodityStatusPending, to: models.CommodityStatusRejected, reason: "   ", wantErr: true},
		{name: "unknown target", from: models.CommodityStatusPending, to: "archived", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &models.Commodity{Status: tt.from, RejectionReason: tt.oldReason}

			tr, err := ApplyTransition(c, tt.to, tt.reason)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation))
				assert.Equal(t, tt.from, c.Status, "status must not change on error")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantNoop, tr.Noop)
			assert.Equal(t, tt.from, tr.From)
			assert.Equal(t, tt.to, tr.To)
			assert.Equal(t, tt.to, c.Status)

			if tt.wantNoop {
				assert.Equal(t, tt.oldReason, c.RejectionReason)
				return
			}

			assert.Equal(t, tt.wantReason, c.RejectionReason)
		})
	}
}

func TestRejectionReasonInvariant(t *testing.T) {
	c := &models.Commodity{Status: models.CommodityStatusPending}

	steps := []struct {
		to     models.CommodityStatus
		reason string
	}{
		{models.CommodityStatusRejected, "x"},
		{models.CommodityStatusApproved, ""},
		{models.CommodityStatusRejected, "y"},
		{models.CommodityStatusPending, ""},
	}

	for _, step := range steps {
		_, err := ApplyTransition(c, step.to, step.reason)
		require.NoError(t, err)

		assert.Equal(t, c.Status == models.CommodityStatusRejected, c.RejectionReason != "")
	}
}

func TestTargetFor(t *testing.T) {
	got, err := TargetFor(models.ModerationApprove)
	require.NoError(t, err)
	assert.Equal(t, models.CommodityStatusApproved, got)

	got, err = TargetFor(models.ModerationReject)
	require.NoError(t, err)
	assert.Equal(t, models.CommodityStatusRejected, got)

	got, err = TargetFor(models.ModerationRevert)
	require.NoError(t, err)
	assert.Equal(t, models.CommodityStatusPending, got)

	_, err = TargetFor("archive")
	assert.True(t, appErrors.HasCode(err, appErrors.ErrCodeValidation))
}
