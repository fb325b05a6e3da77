package appointment

import "github.com/BruksfildServices01/gym-scheduler/internal/models"

type Role string

const (
	RoleMember  Role = "member"
	RoleTrainer Role = "trainer"
	RoleAdmin   Role = "admin"
)

// Actor is the authenticated caller. For trainers, ID is the trainer id.
type Actor struct {
	ID   uint
	Role Role
}

// CanSee reports whether the appointment belongs to the actor's view.
func (a Actor) CanSee(ap *models.Appointment) bool {
	switch a.Role {
	case RoleAdmin:
		return true
	case RoleMember:
		return ap.MemberID == a.ID
	case RoleTrainer:
		return ap.TrainerID == a.ID
	}
	return false
}
