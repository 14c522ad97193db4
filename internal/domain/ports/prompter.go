package ports

// Prompter collects free-form input from the user. The session treats a
// prompt as a suspension point: no other gesture is processed until it
// returns.
type Prompter interface {
	// Prompt asks for a value, offering a default. An empty result means the
	// user supplied nothing.
	Prompt(label, defaultValue string) (string, error)
}
