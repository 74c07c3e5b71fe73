package models

type UserStatus string
type UserRole string
type ProfileStatus string
type CastingStatus string
type ApplicationStatus string
type BookingStatus string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"

	UserRoleModel UserRole = "model"
	UserRoleBrand UserRole = "brand"
	UserRoleAdmin UserRole = "admin"

	ProfileStatusUnderReview ProfileStatus = "UNDER_REVIEW"
	ProfileStatusOnline      ProfileStatus = "ONLINE"
	ProfileStatusOffline     ProfileStatus = "OFFLINE"

	CastingStatusDraft       CastingStatus = "draft"
	CastingStatusUnderReview CastingStatus = "under_review"
	CastingStatusOpen        CastingStatus = "open"
	CastingStatusClosed      CastingStatus = "closed"

	ApplicationStatusApplied     ApplicationStatus = "applied"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusCancelled   ApplicationStatus = "cancelled"
	ApplicationStatusBooked      ApplicationStatus = "booked"

	BookingStatusPending   BookingStatus = "pending"
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// UI-facing casting status values. The storage enum has four states, the
// portal surfaces three.
const (
	CastingUIUnderVerification = "UNDER_VERIFICATION"
	CastingUIOnline            = "ONLINE"
	CastingUIClosed            = "CLOSED"
)

// UIStatus maps the stored casting status to its portal label.
// draft and under_review both render as UNDER_VERIFICATION.
func (s CastingStatus) UIStatus() string {
	switch s {
	case CastingStatusOpen:
		return CastingUIOnline
	case CastingStatusClosed:
		return CastingUIClosed
	default:
		return CastingUIUnderVerification
	}
}

// CastingStatusFromUI resolves a portal label back to a storage status.
// UNDER_VERIFICATION resolves to under_review, never draft.
func CastingStatusFromUI(ui string) (CastingStatus, bool) {
	switch ui {
	case CastingUIUnderVerification:
		return CastingStatusUnderReview, true
	case CastingUIOnline:
		return CastingStatusOpen, true
	case CastingUIClosed:
		return CastingStatusClosed, true
	default:
		return "", false
	}
}

// Status transition tables. The update endpoints consult these instead of
// accepting arbitrary edges.

var profileTransitions = map[ProfileStatus][]ProfileStatus{
	ProfileStatusUnderReview: {ProfileStatusOnline, ProfileStatusOffline},
	ProfileStatusOnline:      {ProfileStatusOffline},
	ProfileStatusOffline:     {ProfileStatusOnline},
}

var castingTransitions = map[CastingStatus][]CastingStatus{
	CastingStatusDraft:       {CastingStatusUnderReview},
	CastingStatusUnderReview: {CastingStatusOpen, CastingStatusClosed},
	CastingStatusOpen:        {CastingStatusClosed},
}

var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusApplied:     {ApplicationStatusShortlisted, ApplicationStatusRejected, ApplicationStatusCancelled},
	ApplicationStatusShortlisted: {ApplicationStatusBooked, ApplicationStatusRejected, ApplicationStatusCancelled},
}

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending: {BookingStatusApproved, BookingStatusRejected, BookingStatusCancelled},
}

func (s ProfileStatus) CanTransitionTo(to ProfileStatus) bool {
	return containsStatus(profileTransitions[s], to)
}

func (s CastingStatus) CanTransitionTo(to CastingStatus) bool {
	return containsStatus(castingTransitions[s], to)
}

func (s ApplicationStatus) CanTransitionTo(to ApplicationStatus) bool {
	return containsStatus(applicationTransitions[s], to)
}

func (s BookingStatus) CanTransitionTo(to BookingStatus) bool {
	return containsStatus(bookingTransitions[s], to)
}

func containsStatus[T comparable](list []T, v T) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
