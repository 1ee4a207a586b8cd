package health

// Service encapsulates health-related checks.
type Service struct {
	Provider string
}

// NewService constructs a new health service for the configured LLM provider.
func NewService(provider string) *Service {
	return &Service{Provider: provider}
}

// Status returns a simple health payload.
func (s *Service) Status() map[string]any {
	return map[string]any{"ok": true, "provider": s.Provider}
}
