package handlers

//go:generate mockgen -source=prompt.go -destination=mock_prompt.go -package=handlers

// Prompter collects a single value from the user.
type Prompter interface {
	Text(prompt string) (string, error)     // Reads a visible line, trimmed
	Password(prompt string) (string, error) // Reads a line without echo
}
