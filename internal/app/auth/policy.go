// Package auth holds the pure authorization rules applied by the services.
// The rules only look at who the caller is and what row they touch; loading
// the row and reporting not-found stays with the caller, so a missing
// resource is reported before any permission verdict.
package auth

import (
	"github.com/campushire/placementhub/internal/app/models"
	"github.com/campushire/placementhub/internal/pkg/apperrors"
)

// Actor is the authenticated caller extracted from a verified token
type Actor struct {
	ID   int64
	Role models.Role
}

// IsAdmin reports whether the actor carries the admin role
func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// IsStudent reports whether the actor carries the student role
func (a Actor) IsStudent() bool {
	return a.Role == models.RoleStudent
}

// Owns reports whether the actor is the student that owns the row
func (a Actor) Owns(ownerID int64) bool {
	return a.IsStudent() && a.ID == ownerID
}

// RequireAdmin rejects any actor that is not an admin
func RequireAdmin(actor Actor) error {
	if !actor.IsAdmin() {
		return apperrors.NewForbiddenError("admin access required")
	}
	return nil
}

// RequireStudent rejects any actor that is not a student
func RequireStudent(actor Actor) error {
	if !actor.IsStudent() {
		return apperrors.NewForbiddenError("student access required")
	}
	return nil
}

// RequireOwnerOrAdmin admits the owning student and any admin
func RequireOwnerOrAdmin(actor Actor, ownerID int64) error {
	if actor.IsAdmin() || actor.Owns(ownerID) {
		return nil
	}
	return apperrors.NewForbiddenError("not allowed to access this resource")
}

// RequireOwner admits only the owning student; admins are rejected too
func RequireOwner(actor Actor, ownerID int64) error {
	if actor.Owns(ownerID) {
		return nil
	}
	return apperrors.NewForbiddenError("not allowed to access this resource")
}
