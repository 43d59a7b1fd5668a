package recap

import (
	"prestova-one/internal/features/request"
)

// Summary aggregates one month of requests for reporting.
type Summary struct {
	Year     int              `json:"year"`
	Month    int              `json:"month"`
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"by_status"`
	ByType   map[string]int64 `json:"by_type"`
	Requests []request.Request `json:"requests"`
}
