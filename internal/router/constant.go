package router

const (
	classifyTemperature = 0.0
	classifyMaxTokens   = 16
)
