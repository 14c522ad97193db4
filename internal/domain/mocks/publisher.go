package mocks

import "context"

// Publisher is a mock implementation of ports.Publisher.
type Publisher struct {
	Path string
	Err  error

	PublishCallCount int
}

// Publish returns the configured path or error.
func (m *Publisher) Publish(ctx context.Context) (string, error) {
	m.PublishCallCount++
	if m.Err != nil {
		return "", m.Err
	}
	return m.Path, nil
}
