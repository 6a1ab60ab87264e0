package article

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/jonathan/review-schedule/internal/types"
)

type hashedContent struct {
	Introduction     string                `json:"introduction"`
	Conclusion       string                `json:"conclusion"`
	DetailedSchedule []types.ScheduleEntry `json:"detailed_schedule"`
}

// ContentHash digests the introduction, conclusion and detailed schedule for
// change detection. Other sections do not affect it.
func ContentHash(s types.ContentSections) string {
	schedule := s.DetailedSchedule
	if schedule == nil {
		schedule = []types.ScheduleEntry{}
	}
	// strings and slices of plain structs cannot fail to marshal
	data, _ := json.Marshal(hashedContent{
		Introduction:     s.Introduction,
		Conclusion:       s.Conclusion,
		DetailedSchedule: schedule,
	})
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
