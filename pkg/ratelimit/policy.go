package ratelimit

import "time"

// Policy lists the limits applied to the application's sensitive endpoints.
// The table is consumed by routers when wiring middleware; the limiter itself
// is policy-agnostic.
type Policy struct {
	AdminLogin               Config
	ContactForm              Config
	PortalRegistration       Config
	ForgotPassword           Config
	SubcontractorApplication Config
}

// DefaultPolicy returns the production limits.
func DefaultPolicy() Policy {
	return Policy{
		AdminLogin:               Config{Limit: 5, Window: 15 * time.Minute},
		ContactForm:              Config{Limit: 5, Window: 15 * time.Minute},
		PortalRegistration:       Config{Limit: 3, Window: time.Hour},
		ForgotPassword:           Config{Limit: 3, Window: 15 * time.Minute},
		SubcontractorApplication: Config{Limit: 3, Window: time.Hour},
	}
}
