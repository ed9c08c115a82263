package middleware

import (
	"sales-agentic-assistant/pkg/log"
)

type Middleware struct {
	l           log.Logger
	environment string
}

func New(l log.Logger, environment string) Middleware {
	return Middleware{
		l:           l,
		environment: environment,
	}
}
