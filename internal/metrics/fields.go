package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrOutcome = "outcome"
)

// Assignment outcomes.
const (
	OutcomePlaced      = "placed"
	OutcomeNoOp        = "noop"
	OutcomeUnplaceable = "unplaceable"
)
