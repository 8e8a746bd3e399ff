package request

import (
	"strings"
	"time"

	"rentx-api/internal/domain/rentrequest"
	"rentx-api/internal/pkg/errs"
	"rentx-api/internal/usecase/commands"

	"github.com/google/uuid"
)

var ErrInvalidDate = errs.Newf(errs.KindValidation, "Dates must be YYYY-MM-DD or RFC 3339")

type CreateRentRequestRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
	StartDate string    `json:"startDate" binding:"required"`
	EndDate   string    `json:"endDate" binding:"required"`
}

func (r CreateRentRequestRequest) ToInput() (commands.CreateRentRequestInput, error) {
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return commands.CreateRentRequestInput{}, err
	}
	end, err := ParseDate(r.EndDate)
	if err != nil {
		return commands.CreateRentRequestInput{}, err
	}
	return commands.CreateRentRequestInput{
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
		StartDate: start,
		EndDate:   end,
	}, nil
}

// DecisionRequest carries ACCEPTED or REJECTED; other actions are refused by
// the use case once the request is known to be PENDING.
type DecisionRequest struct {
	Action          string `json:"action" binding:"required"`
	RejectionReason string `json:"rejectionReason"`
}

func (r DecisionRequest) NormalizedAction() string {
	return strings.ToUpper(strings.TrimSpace(r.Action))
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateStatusRequest) NormalizedStatus() string {
	return strings.ToUpper(strings.TrimSpace(r.Status))
}

type ListRentRequestsQuery struct {
	StatusGroup string `form:"statusGroup"`
	Cursor      string `form:"cursor"`
	Limit       int    `form:"limit" binding:"omitempty,min=1"`
}

// ParseDate accepts a calendar date or an RFC 3339 timestamp and keeps the
// UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(rentrequest.DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return rentrequest.DateOf(t), nil
	}
	return time.Time{}, ErrInvalidDate
}
