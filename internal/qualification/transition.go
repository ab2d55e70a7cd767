// Package qualification implements the state machine governing the status of
// a camp participation.
//
//	NONE ──accept──▶ ACCEPTED ──cancel──▶ CANCELLED
//	  │                 ▲                     │
//	  └──reject──▶ REJECTED └────undo_cancel──┘
//
// delete returns any decided status to NONE.
package qualification

import (
	"fmt"

	"github.com/gdg-garage/camp-profile-api/internal/apperr"
)

// Action names a transition a privileged viewer can trigger.
type Action string

const (
	Accept     Action = "accept"
	Reject     Action = "reject"
	Cancel     Action = "cancel"
	UndoCancel Action = "undo_cancel"
	Delete     Action = "delete"
)

// Actions lists every action in the order controls are offered.
var Actions = []Action{Accept, Reject, Cancel, UndoCancel, Delete}

type edge struct {
	from   Status
	action Action
}

var transitions = map[edge]Status{
	{None, Accept}:          Accepted,
	{None, Reject}:          Rejected,
	{Accepted, Cancel}:      Cancelled,
	{Cancelled, UndoCancel}: Accepted,
	{Accepted, Delete}:      None,
	{Rejected, Delete}:      None,
	{Cancelled, Delete}:     None,
}

// ParseAction validates an action name.
func ParseAction(name string) (Action, error) {
	for _, a := range Actions {
		if string(a) == name {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown qualification action %q", name)
}

// TransitionError reports an action attempted from a status where it is not
// defined. It matches apperr.ErrInvalidTransition.
type TransitionError struct {
	From   Status
	Action Action
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s a participation in status %s", e.Action, e.From)
}

func (e *TransitionError) Unwrap() error {
	return apperr.ErrInvalidTransition
}

// Apply returns the status reached by performing action from s.
func Apply(s Status, action Action) (Status, error) {
	next, ok := transitions[edge{s, action}]
	if !ok {
		return s, &TransitionError{From: s, Action: action}
	}
	return next, nil
}

// Allowed reports whether action is defined from s.
func Allowed(s Status, action Action) bool {
	_, ok := transitions[edge{s, action}]
	return ok
}

// Available returns the actions defined from s, in offering order.
func Available(s Status) []Action {
	var out []Action
	for _, a := range Actions {
		if Allowed(s, a) {
			out = append(out, a)
		}
	}
	return out
}

// Qualify accepts a pending participation.
func (s Status) Qualify() (Status, error) { return Apply(s, Accept) }

// Reject rejects a pending participation.
func (s Status) Reject() (Status, error) { return Apply(s, Reject) }

// CancelArrival records that an accepted participant withdrew.
func (s Status) CancelArrival() (Status, error) { return Apply(s, Cancel) }

// UndoCancellation restores an accepted status after a withdrawal.
func (s Status) UndoCancellation() (Status, error) { return Apply(s, UndoCancel) }

// ClearDecision returns a decided participation to pending.
func (s Status) ClearDecision() (Status, error) { return Apply(s, Delete) }
