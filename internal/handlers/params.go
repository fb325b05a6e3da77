package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/gym-scheduler/internal/domain/appointment"
)

// --------------------------------------------------
// Path and query parsing
// --------------------------------------------------

func appointmentIDParam(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domain.Validation("invalid_appointment_id", "appointment id must be a UUID")
	}
	return id, nil
}

func uintParam(c *gin.Context, name string) (uint, error) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || n == 0 {
		return 0, domain.Validation("invalid_"+name, name+" must be a positive integer")
	}
	return uint(n), nil
}

// queryFilter reads status, from, to, trainer_id and bucket. Empty values
// and "all" mean no filter.
func queryFilter(c *gin.Context) (domain.QueryFilter, error) {
	var f domain.QueryFilter

	status, err := domain.ParseStatusFilter(c.Query("status"))
	if err != nil {
		return f, err
	}
	f.Status = status

	bucket, err := domain.ParseBucket(c.Query("bucket"))
	if err != nil {
		return f, err
	}
	f.Bucket = bucket

	f.From = c.Query("from")
	f.To = c.Query("to")

	if raw := c.Query("trainer_id"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return f, domain.Validation("invalid_trainer_id", "trainer_id must be a positive integer")
		}
		id := uint(n)
		f.TrainerID = &id
	}

	return f, f.Validate()
}
