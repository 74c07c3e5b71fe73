package app

// MockEmailProvider is used for tests and local development without SMTP.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(to, subject, body string) error { return nil }
