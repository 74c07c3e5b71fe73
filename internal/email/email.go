package email

// Provider sends transactional mail. Implementations must be safe for
// concurrent use; callers fire them from goroutines.
type Provider interface {
	Send(to, subject, body string) error
}
