package api

import "github.com/Eui18/recetkit/pkg/plan"

// User is the backend's view of an account, decoded from the wire
// representation. SubscriptionID is empty for users without a paid
// subscription.
type User struct {
	ID                  string
	Name                string
	Email               string
	Tier                plan.Tier
	SubscriptionID      string
	PendingCancellation bool
}

// Recipe is a single entry from the user's recipe list.
type Recipe struct {
	ID          string   `json:"id"`
	Name        string   `json:"nombre"`
	Description string   `json:"descripcion"`
	Ingredients []string `json:"ingredientes"`
	ImageURL    string   `json:"imagen"`
	Premium     bool     `json:"premium"`
}

// Credentials carries login input. Validation mirrors the product's
// client-side rules.
type Credentials struct {
	Email    string `json:"correo" validate:"required,email"`
	Password string `json:"contraseña" validate:"required,min=4"`
}

// Registration carries sign-up input.
type Registration struct {
	Name     string `json:"nombre" validate:"required,alpha_space,min=5"`
	Email    string `json:"correo" validate:"required,email"`
	Password string `json:"contraseña" validate:"required,min=4"`
}

// CancellationResult is the backend acknowledgment of a subscription
// cancellation. User carries the backend's updated account snapshot when
// provided; callers should prefer it over inferring fields locally.
type CancellationResult struct {
	User    *User
	Message string
}

// wireUser is the backend's JSON shape for an account.
type wireUser struct {
	ID                  string `json:"id"`
	Name                string `json:"nombre"`
	Email               string `json:"correo"`
	SubscriptionType    string `json:"tipo_suscripcion"`
	SubscriptionID      string `json:"id_suscripcion"`
	PendingCancellation bool   `json:"cancelacion_pendiente"`
}

func (w wireUser) toUser() *User {
	return &User{
		ID:                  w.ID,
		Name:                w.Name,
		Email:               w.Email,
		Tier:                plan.ParseTier(w.SubscriptionType),
		SubscriptionID:      w.SubscriptionID,
		PendingCancellation: w.PendingCancellation,
	}
}
