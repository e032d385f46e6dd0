package resignation

import (
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/approval"
)

// ResignationRequest entity. ICReason is the in-character reason, OOCReason the
// out-of-character one.
type ResignationRequest struct {
	ID          string
	EmployeeID  string
	Passport    string
	ICReason    string
	OOCReason   string
	RequestDate time.Time
	Status      approval.Status
	CreatedAt   time.Time
	UpdatedAt   time.Time

	EmployeeName *string
}
