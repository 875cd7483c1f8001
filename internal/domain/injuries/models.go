package injuries

// Status is the simplified injury bucket exposed to the front-end.
type Status string

const (
	StatusHealthy      Status = "healthy"
	StatusQuestionable Status = "questionable"
	StatusOut          Status = "out"
)

// severity orders buckets so the worst report for a player can be kept.
func (s Status) severity() int {
	switch s {
	case StatusOut:
		return 2
	case StatusQuestionable:
		return 1
	default:
		return 0
	}
}

// Worse reports whether s is more severe than other.
func (s Status) Worse(other Status) bool {
	return s.severity() > other.severity()
}

// Record is one injury entry as reported by an upstream provider.
type Record struct {
	PlayerName string
	RawStatus  string
}

// Update is the payload item returned by /api/injuries.
type Update struct {
	ID     int    `json:"id"`
	Status Status `json:"status"`
}
