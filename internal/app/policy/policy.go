// Package policy is the single authorization gate for the access layer.
// Every façade operation asks Decide before touching the store; the
// presentation layer never re-implements role checks.
package policy

import (
	"github.com/emrek/registra/internal/app/models"
)

// Action is the kind of operation attempted on an entity. Create and Update
// are distinct because their rules differ (announcement updates are gated on
// authorship, creation on role).
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Entity identifies the record kind a decision is about.
type Entity string

const (
	EntityUser         Entity = "user"
	EntityDepartment   Entity = "department"
	EntityCourse       Entity = "course"
	EntityEnrollment   Entity = "enrollment"
	EntityAnnouncement Entity = "announcement"
)

// Decision is the outcome of a policy evaluation.
type Decision bool

const (
	Allow Decision = true
	Deny  Decision = false
)

// Caller is the identity an operation executes on behalf of. A zero Caller
// (Anonymous true) represents an unauthenticated request.
type Caller struct {
	ID         string
	Role       models.RoleType
	Department string // free-text department name, may be empty
	Anonymous  bool
}

// Anonymous returns the caller used for requests without a session.
func AnonymousCaller() Caller {
	return Caller{Anonymous: true}
}

// Target carries the row-level attributes a rule may inspect. It is nil for
// collection-level decisions (create, unfiltered list).
type Target struct {
	// OwnerID is the user the record belongs to: the user's own ID for
	// EntityUser, the student for EntityEnrollment, the author for
	// EntityAnnouncement (empty when the author was deleted).
	OwnerID string
	// Department is the name of the department the record hangs off, used
	// for faculty reads of enrollments.
	Department string
}

// ruleKey indexes the decision table.
type ruleKey struct {
	role   models.RoleType
	action Action
	entity Entity
}

// ruleFn decides a single (role, action, entity) cell. A nil target means
// the check is collection-level.
type ruleFn func(c Caller, t *Target) Decision

func allowAll(Caller, *Target) Decision { return Allow }

// ownRecord allows access only when the target belongs to the caller.
// Collection-level requests are denied: the caller must name a row.
func ownRecord(c Caller, t *Target) Decision {
	if t == nil || t.OwnerID == "" {
		return Deny
	}
	if t.OwnerID == c.ID {
		return Allow
	}
	return Deny
}

// sameDepartment allows access when the target's department matches the
// caller's department.
func sameDepartment(c Caller, t *Target) Decision {
	if t == nil || c.Department == "" {
		return Deny
	}
	if t.Department == c.Department {
		return Allow
	}
	return Deny
}

// rules is the complete decision table for the two non-admin roles. Admin is
// short-circuited in Decide; anonymous callers are covered by publicRead.
// Any tuple absent from this table is Deny.
var rules = map[ruleKey]ruleFn{
	// Users: everyone may read only their own record; self may update their
	// own record (the façade restricts which fields).
	{models.RoleStudent, ActionRead, EntityUser}:   ownRecord,
	{models.RoleFaculty, ActionRead, EntityUser}:   ownRecord,
	{models.RoleStudent, ActionUpdate, EntityUser}: ownRecord,
	{models.RoleFaculty, ActionUpdate, EntityUser}: ownRecord,

	// Enrollments: students see and create only their own rows; faculty see
	// rows for courses in their department and manage any enrollment.
	{models.RoleStudent, ActionRead, EntityEnrollment}:   ownRecord,
	{models.RoleStudent, ActionCreate, EntityEnrollment}: ownRecord,
	{models.RoleFaculty, ActionRead, EntityEnrollment}:   sameDepartment,
	{models.RoleFaculty, ActionCreate, EntityEnrollment}: allowAll,
	{models.RoleFaculty, ActionUpdate, EntityEnrollment}: allowAll,
	{models.RoleFaculty, ActionDelete, EntityEnrollment}: allowAll,

	// Courses: faculty may create (course-management screens); updates and
	// deletes stay admin-only.
	{models.RoleFaculty, ActionCreate, EntityCourse}: allowAll,

	// Announcements: faculty may create; updates require authorship.
	{models.RoleFaculty, ActionCreate, EntityAnnouncement}: allowAll,
	{models.RoleFaculty, ActionUpdate, EntityAnnouncement}: ownRecord,
}

// publicRead marks entities readable by anyone, including anonymous callers.
var publicRead = map[Entity]bool{
	EntityDepartment:   true,
	EntityCourse:       true,
	EntityAnnouncement: true,
}

// Decide maps (caller, action, entity, target) to Allow or Deny. It is pure:
// no store access, no side effects. Deny is the default for any unmatched
// tuple, including unknown roles.
func Decide(c Caller, action Action, entity Entity, target *Target) Decision {
	// Public reads need no session at all.
	if action == ActionRead && publicRead[entity] {
		return Allow
	}

	if c.Anonymous {
		return Deny
	}

	// Admin may read and write every record of every entity.
	if c.Role == models.RoleAdmin {
		return Allow
	}

	if rule, ok := rules[ruleKey{c.Role, action, entity}]; ok {
		return rule(c, target)
	}

	return Deny
}

// Check is Decide returning an error-friendly bool, for call sites that only
// need the boolean.
func Check(c Caller, action Action, entity Entity, target *Target) bool {
	return Decide(c, action, entity, target) == Allow
}
