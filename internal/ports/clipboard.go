package ports

// Clipboard abstracts the system clipboard so the session loop can run
// headless and under test.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}
