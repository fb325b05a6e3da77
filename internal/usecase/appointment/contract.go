package appointment

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/gym-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/gym-scheduler/internal/timezone"
)

// Auditor receives an event after every successful state change.
type Auditor interface {
	Dispatch(ev audit.Event)
}

// Recorder counts operation outcomes.
type Recorder interface {
	Operation(operation, result string)
	OverlapDetected()
	CacheLookup(hit bool)
}

// CalendarCache stores generated calendars. Implementations swallow their
// own failures; a miss only costs a regeneration.
type CalendarCache interface {
	GetCalendar(ctx context.Context, trainerID uint, fromDate string, horizon int) (domain.Calendar, bool)
	StoreCalendar(ctx context.Context, trainerID uint, fromDate string, horizon int, cal domain.Calendar)
	InvalidateTrainer(ctx context.Context, trainerID uint)
}

// Deps are shared by the appointment use cases. Cache may be nil.
type Deps struct {
	Repo     domain.Repository
	Trainers domain.TrainerDirectory
	Tx       domain.TxManager
	Cache    CalendarCache
	Clock    timezone.Clock
	Audit    Auditor
	Metrics  Recorder
	Logger   zerolog.Logger
	Policy   domain.Policy
}
