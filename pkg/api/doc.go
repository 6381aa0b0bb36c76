// Package api is the JSON client for the product backend: accounts,
// recipes, payment initiation, and subscription cancellation.
//
// The backend speaks Spanish on the wire (id_user, tipo_suscripcion,
// correo); this package owns all wire DTOs and hands typed values to the
// rest of the module. Non-success responses map uniformly onto sentinel
// errors:
//
//	400           → ErrBadRequest
//	5xx           → ErrServer
//	other non-2xx → ErrUnexpected
//
// with endpoint-specific refinements (401/404 on login →
// ErrInvalidCredentials, 409 on register → ErrEmailTaken, 404 on recipes
// → ErrNoRecipes). Missing identifiers and invalid form input fail fast
// with ErrValidation before any request is dispatched.
package api
