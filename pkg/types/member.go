package types

type MemberStatus string

const (
	MemberStatusActive  MemberStatus = "Active"
	MemberStatusExpired MemberStatus = "Expired"
)

func (s MemberStatus) Valid() bool {
	return s == MemberStatusActive || s == MemberStatusExpired
}

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// MemberChangeReason tags entries in the member change log.
type MemberChangeReason string

const (
	MemberChangeReasonRegistered       MemberChangeReason = "registered"
	MemberChangeReasonUpdated          MemberChangeReason = "updated"
	MemberChangeReasonPaymentExtension MemberChangeReason = "payment_extension"
	MemberChangeReasonDeleted          MemberChangeReason = "deleted"
)
