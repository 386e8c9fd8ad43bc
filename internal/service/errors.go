package service

import "net/http"

// Error is a request-scoped failure carrying its HTTP mapping, the same
// shape echo.HTTPError has but with the storefront's fixed messages.
// Anything that is not a *Error surfaces as a 500.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	ErrMissingFields      = &Error{http.StatusBadRequest, "Missing fields"}
	ErrEmailTaken         = &Error{http.StatusBadRequest, "Email already registered"}
	ErrUsernameTaken      = &Error{http.StatusBadRequest, "Username already taken"}
	ErrMissingStatus      = &Error{http.StatusBadRequest, "Missing status"}
	ErrInvalidPrice       = &Error{http.StatusBadRequest, "Invalid price"}
	ErrMainProtected      = &Error{http.StatusBadRequest, "Main admin cannot be removed"}
	ErrInvalidLogin       = &Error{http.StatusUnauthorized, "Invalid email or password"}
	ErrInvalidCredentials = &Error{http.StatusUnauthorized, "Invalid credentials"}
	ErrTokenRequired      = &Error{http.StatusUnauthorized, "Admin token required"}
	ErrPendingApproval    = &Error{http.StatusForbidden, "Pending approval"}
	ErrRejected           = &Error{http.StatusForbidden, "Rejected by main admin"}
	ErrNotApproved        = &Error{http.StatusForbidden, "Admin not approved"}
	ErrMainOnly           = &Error{http.StatusForbidden, "Only main admin allowed"}
	ErrAdminNotFound      = &Error{http.StatusNotFound, "Admin not found"}
	ErrOrderNotFound      = &Error{http.StatusNotFound, "Order not found"}
	ErrProductNotFound    = &Error{http.StatusNotFound, "Product not found"}
)
