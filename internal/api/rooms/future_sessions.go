package rooms

import (
	"timetable-app/internal/domain/security"
	"timetable-app/internal/domain/timetable"
)

// ScanFutureSessions walks the later sibling sessions (already ordered
// ascending by begin date and restricted to the current session's academic
// initiative) and re-evaluates the two add-location rights in a context
// re-bound to each candidate session. A session is kept when at least one
// of the two rights holds there; both booleans are carried either way.
func ScanFutureSessions(candidates []timetable.Session, eval RightEvaluator) []FutureSessionDTO {
	var out []FutureSessionDTO
	if eval == nil {
		return out
	}
	for _, session := range candidates {
		canAddRoom := eval(session.ID, security.RightAddRoom)
		canAddNonUniversity := eval(session.ID, security.RightAddNonUnivLocation)
		if !canAddRoom && !canAddNonUniversity {
			continue
		}
		out = append(out, FutureSessionDTO{
			ID:                  session.ID,
			Label:               session.Label,
			CanAddRoom:          canAddRoom,
			CanAddNonUniversity: canAddNonUniversity,
		})
	}
	return out
}
