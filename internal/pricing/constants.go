package pricing

// Entry cost curve constants, tuned for game balance.
const (
	DefaultSlope     = 1.5 // asymptotic entry cost per unit of part cost
	DefaultIntercept = 1e5 // height of the saturating term
	DefaultBase      = 1.25
)
