package api

import "errors"

var (
	// ErrValidation indicates required input was missing or malformed.
	// The request is never dispatched to the backend.
	ErrValidation = errors.New("request validation failed")

	// ErrBadRequest maps a backend 400 response.
	ErrBadRequest = errors.New("backend rejected the request")
	// ErrServer maps a backend 5xx response.
	ErrServer = errors.New("backend server error")
	// ErrUnexpected maps any other non-success response.
	ErrUnexpected = errors.New("unexpected backend response")

	// ErrInvalidCredentials is returned for 401/404 on login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken is returned for 409 on registration.
	ErrEmailTaken = errors.New("email already registered")
	// ErrNoRecipes is returned when the backend has no recipes for a user.
	ErrNoRecipes = errors.New("no recipes found for user")
)
