package http

import (
	"github.com/abmacros/server/internal/infrastructure/dynamo"
	jwtinfra "github.com/abmacros/server/internal/infrastructure/jwt"
	"github.com/abmacros/server/internal/infrastructure/sns"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	VerificationRepo *dynamo.VerificationRepo
	MealRepo         *dynamo.MealRepo
	ProfileRepo      *dynamo.ProfileRepo
	SMSSender        sns.SMSSender
	JWTProvider      *jwtinfra.Provider
}
