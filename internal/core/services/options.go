package services

import "time"

// ServiceOption is a functional option shared by the services that embed BaseService.
type ServiceOption func(*BaseService)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.now = now
	}
}

func applyOptions(base *BaseService, options []ServiceOption) {
	for _, option := range options {
		option(base)
	}
}
