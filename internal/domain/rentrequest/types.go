package rentrequest

import (
	"rentx-api/internal/pkg/errs"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusAccepted  Status = "ACCEPTED"
	StatusRejected  Status = "REJECTED"
	StatusCollected Status = "COLLECTED"
	StatusCompleted Status = "COMPLETED"
)

// ActiveStatuses hold reserved stock.
var ActiveStatuses = []Status{StatusPending, StatusAccepted, StatusCollected}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusCollected, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) IsActive() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusCollected:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusCompleted
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", errs.Newf(errs.KindValidation, "Invalid status: %s", s)
	}
	return status, nil
}

type StatusGroup string

const (
	GroupAll       StatusGroup = ""
	GroupOngoing   StatusGroup = "ongoing"
	GroupCompleted StatusGroup = "completed"
)

func ParseStatusGroup(s string) (StatusGroup, error) {
	switch g := StatusGroup(s); g {
	case GroupAll, GroupOngoing, GroupCompleted:
		return g, nil
	default:
		return "", errs.Newf(errs.KindValidation, "Invalid status group: %s", s)
	}
}

// Statuses returns nil for GroupAll.
func (g StatusGroup) Statuses() []Status {
	switch g {
	case GroupOngoing:
		return ActiveStatuses
	case GroupCompleted:
		return []Status{StatusCompleted}
	default:
		return nil
	}
}

// Decision is the seller's answer to a PENDING request.
type Decision string

const (
	DecisionAccept Decision = Decision(StatusAccepted)
	DecisionReject Decision = Decision(StatusRejected)
)

func ParseDecision(s string) (Decision, error) {
	switch d := Decision(s); d {
	case DecisionAccept, DecisionReject:
		return d, nil
	default:
		return "", errs.Newf(errs.KindValidation, "Action must be ACCEPTED or REJECTED")
	}
}

func (d Decision) Status() Status {
	return Status(d)
}
