package model

// Scope carries the caller identity through usecase calls.
type Scope struct {
	UserID   string
	Username string
}

// Environment represents the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
