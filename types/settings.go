package types

// Frequency is the cadence of recurring cash contributions.
type Frequency string

const (
	Monthly      Frequency = "monthly"
	Quarterly    Frequency = "quarterly"
	SemiAnnually Frequency = "semi-annually"
	Annually     Frequency = "annually"
)

func (f Frequency) Valid() bool {
	switch f {
	case Monthly, Quarterly, SemiAnnually, Annually:
		return true
	}
	return false
}

// Settings is the scalar configuration of one simulation run.
// ContributionAmount may be negative to model recurring withdrawals.
type Settings struct {
	InitialBalance        float64
	ContributionAmount    float64
	ContributionFrequency Frequency
}
