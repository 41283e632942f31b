// Package dialog models which form dialog a screen shows and for which row.
package dialog

import (
	"encoding/json"
	"fmt"
)

type Kind string

const (
	KindClosed   Kind = "closed"
	KindAdding   Kind = "adding"
	KindEditing  Kind = "editing"
	KindDeleting Kind = "deleting"
)

// State is Closed, Adding, Editing(entity) or Deleting(entity). Entity is set only for
// the last two, so a closed dialog can never carry a stale row.
type State[T any] struct {
	kind   Kind
	entity *T
}

func Closed[T any]() State[T] {
	return State[T]{kind: KindClosed}
}

func Adding[T any]() State[T] {
	return State[T]{kind: KindAdding}
}

func Editing[T any](entity T) State[T] {
	return State[T]{kind: KindEditing, entity: &entity}
}

func Deleting[T any](entity T) State[T] {
	return State[T]{kind: KindDeleting, entity: &entity}
}

// Kind reports the zero State as closed.
func (s State[T]) Kind() Kind {
	if s.kind == "" {
		return KindClosed
	}

	return s.kind
}

func (s State[T]) IsOpen() bool {
	return s.Kind() != KindClosed
}

// Entity returns the row being edited or deleted.
func (s State[T]) Entity() (T, bool) {
	if s.entity == nil {
		var zero T
		return zero, false
	}

	return *s.entity, true
}

type stateJSON[T any] struct {
	Kind   Kind `json:"kind"`
	Entity *T   `json:"entity,omitempty"`
}

func (s State[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(stateJSON[T]{Kind: s.Kind(), Entity: s.entity})
}

func (s State[T]) String() string {
	if s.entity == nil {
		return string(s.Kind())
	}

	return fmt.Sprintf("%s(%v)", s.Kind(), *s.entity)
}

// ParseKind validates a dialog kind coming from a request.
func ParseKind(value string) (Kind, error) {
	switch kind := Kind(value); kind {
	case KindClosed, KindAdding, KindEditing, KindDeleting:
		return kind, nil
	}

	return KindClosed, fmt.Errorf("unknown dialog kind %q", value)
}
