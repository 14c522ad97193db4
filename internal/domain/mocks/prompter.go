package mocks

// Prompter is a mock implementation of ports.Prompter returning canned
// responses in order. Once exhausted it reports empty input.
type Prompter struct {
	Responses []string
	Err       error

	PromptCallCount int
}

// Prompt pops the next canned response.
func (m *Prompter) Prompt(label, defaultValue string) (string, error) {
	m.PromptCallCount++
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Responses) == 0 {
		return "", nil
	}
	response := m.Responses[0]
	m.Responses = m.Responses[1:]
	return response, nil
}
