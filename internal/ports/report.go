package ports

// ReportRenderer converts a formatted result report into an exportable
// document.
type ReportRenderer interface {
	Format() string
	Render(title, report string) ([]byte, error)
}
