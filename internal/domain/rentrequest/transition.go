package rentrequest

import (
	"slices"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusAccepted, StatusRejected},
	StatusAccepted:  {StatusCollected},
	StatusCollected: {StatusCompleted},
}

func CanTransition(from, to Status) bool {
	return slices.Contains(transitions[from], to)
}

func (s Status) Next() []Status {
	return slices.Clone(transitions[s])
}

// ReleasesStock reports whether entering s hands the reserved quantity back.
func (s Status) ReleasesStock() bool {
	return s == StatusRejected || s == StatusCompleted
}
