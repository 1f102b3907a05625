package order

import (
	"studyhub/internal/core/domain/model/kernel"
	"studyhub/internal/pkg/errs"
)

// Role names a capability an actor holds when calling into the core.
// Roles are resolved once per request by the caller and passed explicitly;
// the core never re-derives them from a user record.
type Role string

const (
	RoleClient     Role = "client"
	RoleExpert     Role = "expert"
	RoleSystem     Role = "system"
	RoleArbitrator Role = "arbitrator"
)

// Validate checks that the Role value is one of the defined roles.
func (r Role) Validate() error {
	switch r {
	case RoleClient, RoleExpert, RoleSystem, RoleArbitrator:
		return nil
	}
	return errs.NewValueIsInvalidError("role")
}

// ErrActorIsNotConstructed is returned when an Actor was not created through
// NewActor or SystemActor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError("Actor must be created via NewActor or SystemActor")

// Actor identifies the party performing an operation together with the set
// of roles it holds. The transition table consults these roles to decide
// whether the actor may trigger an event.
type Actor struct {
	id    kernel.UUID
	roles map[Role]struct{}

	isConstructed bool
}

// NewActor creates an actor with the given identity and roles.
// At least one role is required and every role must be valid.
func NewActor(id kernel.UUID, roles ...Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if len(roles) == 0 {
		return Actor{}, errs.NewValueIsRequiredError("roles")
	}

	roleSet := make(map[Role]struct{}, len(roles))
	for _, r := range roles {
		if err := r.Validate(); err != nil {
			return Actor{}, err
		}
		roleSet[r] = struct{}{}
	}

	return Actor{
		id:            id,
		roles:         roleSet,
		isConstructed: true,
	}, nil
}

// SystemActor creates an actor representing the platform itself, used by
// scheduled jobs and payment confirmation callbacks.
func SystemActor() Actor {
	return Actor{
		id:            kernel.NewUUID(),
		roles:         map[Role]struct{}{RoleSystem: {}},
		isConstructed: true,
	}
}

// ID returns the actor's identity.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// HasRole reports whether the actor holds the given role.
func (a Actor) HasRole(role Role) bool {
	_, ok := a.roles[role]
	return ok
}

// HasAnyRole reports whether the actor holds at least one of the given roles.
func (a Actor) HasAnyRole(roles ...Role) bool {
	for _, r := range roles {
		if a.HasRole(r) {
			return true
		}
	}
	return false
}

// Validate ensures the Actor was created through a constructor.
func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}
