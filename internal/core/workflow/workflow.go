// Package workflow declares the legal status transitions for commercial
// documents as explicit tables keyed by (current state, action), each with a
// role whitelist. Services consult these tables before mutating any document;
// nothing here performs I/O.
package workflow

import (
	"fmt"

	"github.com/bizgrid/erp_backend/internal/apperrors"
	"github.com/bizgrid/erp_backend/internal/core/domain"
)

// Action is a named workflow operation, e.g. "send" or "approve".
type Action string

// ErrTransitionNotAllowed wraps apperrors.ErrPrecondition so handlers map it
// to 412; ErrRoleNotAllowed wraps apperrors.ErrForbidden for 403.
var (
	ErrTransitionNotAllowed = fmt.Errorf("%w: transition not allowed", apperrors.ErrPrecondition)
	ErrRoleNotAllowed       = fmt.Errorf("%w: role not allowed", apperrors.ErrForbidden)
)

type transitionKey struct {
	from   string
	action Action
}

type transition struct {
	to    string
	roles map[domain.Role]struct{}
}

// Machine is a transition table for one document type.
type Machine struct {
	name        string
	transitions map[transitionKey]transition
}

// New creates an empty machine named after its document type.
func New(name string) *Machine {
	return &Machine{
		name:        name,
		transitions: make(map[transitionKey]transition),
	}
}

// Add registers a transition from -> to under action, permitted to roles.
// It returns the machine for chaining.
func (m *Machine) Add(from string, action Action, to string, roles ...domain.Role) *Machine {
	roleSet := make(map[domain.Role]struct{}, len(roles))
	for _, r := range roles {
		roleSet[r] = struct{}{}
	}
	m.transitions[transitionKey{from: from, action: action}] = transition{to: to, roles: roleSet}
	return m
}

// Next resolves the target state for (current, action, role). It fails with
// ErrTransitionNotAllowed if the table has no such edge, and with
// ErrRoleNotAllowed if the edge exists but the role is not whitelisted.
func (m *Machine) Next(current string, action Action, role domain.Role) (string, error) {
	t, ok := m.transitions[transitionKey{from: current, action: action}]
	if !ok {
		return "", fmt.Errorf("%w: %s in status %s cannot %s", ErrTransitionNotAllowed, m.name, current, action)
	}
	if _, ok := t.roles[role]; !ok {
		return "", fmt.Errorf("%w: role %s cannot %s a %s", ErrRoleNotAllowed, role, action, m.name)
	}
	return t.to, nil
}

// Can reports whether (current, action, role) is a legal transition.
func (m *Machine) Can(current string, action Action, role domain.Role) bool {
	_, err := m.Next(current, action, role)
	return err == nil
}

// Actions returns the actions available from the given state for the role,
// used by list/detail endpoints to tell the UI which buttons to show.
func (m *Machine) Actions(current string, role domain.Role) []Action {
	var actions []Action
	for key, t := range m.transitions {
		if key.from != current {
			continue
		}
		if _, ok := t.roles[role]; !ok {
			continue
		}
		actions = append(actions, key.action)
	}
	return actions
}
