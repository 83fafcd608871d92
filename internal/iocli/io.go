package iocli

// IO abstracts terminal input/output so commands can be tested without a
// real terminal.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)

	// ReadInput prints prompt and reads one trimmed line.
	ReadInput(prompt string) (string, error)

	// ReadPassword prints prompt and reads a line without echoing it.
	ReadPassword(prompt string) (string, error)

	// Confirm prints prompt and reads a yes/no answer. Only "y" and
	// "yes" (case-insensitive) count as yes.
	Confirm(prompt string) (bool, error)
}
