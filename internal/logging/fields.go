package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldPlayer     = "player"
	FieldPlayerID   = "player_id"
	FieldTeam       = "team"
	FieldDepth      = "depth"
	FieldScore      = "score"
	FieldRemaining  = "remaining"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
)
