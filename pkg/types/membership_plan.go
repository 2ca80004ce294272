package types

// MembershipPlan describes a purchasable membership tier. The plan set is
// configuration data; duration is expressed in calendar months.
type MembershipPlan struct {
	Name           string `json:"name" mapstructure:"name"`
	DurationMonths int    `json:"duration_months" mapstructure:"duration_months"`
	// PriceCents is the list price shown when recording a payment; the
	// actual charged amount is free-form.
	PriceCents int64 `json:"price_cents" mapstructure:"price_cents"`
}

func DefaultMembershipPlans() []*MembershipPlan {
	return []*MembershipPlan{
		{Name: "Basic", DurationMonths: 1, PriceCents: 5000},
		{Name: "Standard", DurationMonths: 3, PriceCents: 13500},
		{Name: "Premium", DurationMonths: 12, PriceCents: 48000},
	}
}
