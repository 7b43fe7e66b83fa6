package db

import "time"

// Option -.
type Option func(*SQL)

// MaxPoolSize -.
func MaxPoolSize(size int) Option {
	return func(s *SQL) {
		s.maxPoolSize = size
	}
}

// ConnAttempts -.
func ConnAttempts(attempts int) Option {
	return func(s *SQL) {
		s.connAttempts = attempts
	}
}

// ConnTimeout -.
func ConnTimeout(timeout time.Duration) Option {
	return func(s *SQL) {
		s.connTimeout = timeout
	}
}

// EnableForeignKeys turns on foreign key enforcement for the embedded driver.
func EnableForeignKeys(enable bool) Option {
	return func(s *SQL) {
		s.enableFK = enable
	}
}
