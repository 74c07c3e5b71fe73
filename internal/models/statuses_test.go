package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCastingUIStatusMapping(t *testing.T) {
	assert.Equal(t, CastingUIUnderVerification, CastingStatusDraft.UIStatus())
	assert.Equal(t, CastingUIUnderVerification, CastingStatusUnderReview.UIStatus())
	assert.Equal(t, CastingUIOnline, CastingStatusOpen.UIStatus())
	assert.Equal(t, CastingUIClosed, CastingStatusClosed.UIStatus())

	got, ok := CastingStatusFromUI(CastingUIOnline)
	assert.True(t, ok)
	assert.Equal(t, CastingStatusOpen, got)

	got, ok = CastingStatusFromUI(CastingUIUnderVerification)
	assert.True(t, ok)
	assert.Equal(t, CastingStatusUnderReview, got)

	_, ok = CastingStatusFromUI("draft")
	assert.False(t, ok)
}

func TestProfileTransitions(t *testing.T) {
	assert.True(t, ProfileStatusUnderReview.CanTransitionTo(ProfileStatusOnline))
	assert.True(t, ProfileStatusUnderReview.CanTransitionTo(ProfileStatusOffline))
	assert.True(t, ProfileStatusOnline.CanTransitionTo(ProfileStatusOffline))
	assert.True(t, ProfileStatusOffline.CanTransitionTo(ProfileStatusOnline))
	assert.False(t, ProfileStatusOnline.CanTransitionTo(ProfileStatusUnderReview))
}

func TestApplicationTransitions(t *testing.T) {
	assert.True(t, ApplicationStatusApplied.CanTransitionTo(ApplicationStatusShortlisted))
	assert.True(t, ApplicationStatusShortlisted.CanTransitionTo(ApplicationStatusBooked))
	assert.False(t, ApplicationStatusApplied.CanTransitionTo(ApplicationStatusBooked))
	// rejected is terminal: no moving back to applied
	assert.False(t, ApplicationStatusRejected.CanTransitionTo(ApplicationStatusApplied))
	assert.False(t, ApplicationStatusBooked.CanTransitionTo(ApplicationStatusCancelled))
}

func TestBookingTransitions(t *testing.T) {
	assert.True(t, BookingStatusPending.CanTransitionTo(BookingStatusApproved))
	assert.True(t, BookingStatusPending.CanTransitionTo(BookingStatusCancelled))
	assert.False(t, BookingStatusApproved.CanTransitionTo(BookingStatusPending))
	assert.False(t, BookingStatusRejected.CanTransitionTo(BookingStatusApproved))
}

func TestCastingTransitions(t *testing.T) {
	assert.True(t, CastingStatusDraft.CanTransitionTo(CastingStatusUnderReview))
	assert.True(t, CastingStatusUnderReview.CanTransitionTo(CastingStatusOpen))
	assert.True(t, CastingStatusOpen.CanTransitionTo(CastingStatusClosed))
	assert.False(t, CastingStatusDraft.CanTransitionTo(CastingStatusOpen))
	assert.False(t, CastingStatusClosed.CanTransitionTo(CastingStatusOpen))
}
