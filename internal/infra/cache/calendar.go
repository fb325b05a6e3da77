package cache

import (
	"fmt"
	"strings"
)

const keyPrefix = "calendar"

// CalendarKey identifies one generated calendar. fromDate is part of the key,
// so entries from a previous day are never served again.
func CalendarKey(trainerID uint, fromDate string, horizon int) string {
	return fmt.Sprintf("%s:%d:%s:%d", keyPrefix, trainerID, fromDate, horizon)
}

func trainerPrefix(trainerID uint) string {
	return fmt.Sprintf("%s:%d:", keyPrefix, trainerID)
}

func belongsTo(key string, trainerID uint) bool {
	return strings.HasPrefix(key, trainerPrefix(trainerID))
}
