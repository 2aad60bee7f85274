package market

import (
	"log/slog"
	"time"
)

// B3 trades 10:00-17:30 Brasilia time, which has no daylight saving
// since 2019. A fixed offset is enough.
var brt = time.FixedZone("BRT", -3*60*60)

const (
	openSecond  = 10 * 3600       // 10:00:00
	closeSecond = 17*3600 + 30*60 // 17:30:00, inclusive
)

// StatusService reports whether the exchange is open at a given instant.
type StatusService interface {
	IsOpen(now time.Time) bool
}

type statusService struct {
	ignoreHours bool
}

// NewStatusService builds the market-hours gate. When ignoreHours is set
// every instant is reported as open; the override is logged so forced
// monitoring is visible in the output.
func NewStatusService(ignoreHours bool) StatusService {
	return &statusService{ignoreHours: ignoreHours}
}

func (s *statusService) IsOpen(now time.Time) bool {
	if s.ignoreHours {
		slog.Warn("market hours override active, treating market as open")
		return true
	}

	local := now.In(brt)
	weekday := local.Weekday()
	if weekday == time.Saturday || weekday == time.Sunday {
		slog.Debug("market closed", "weekday", weekday)
		return false
	}

	second := local.Hour()*3600 + local.Minute()*60 + local.Second()
	if second >= openSecond && second <= closeSecond {
		return true
	}
	slog.Debug("market closed", "time", local.Format("15:04:05"))
	return false
}
