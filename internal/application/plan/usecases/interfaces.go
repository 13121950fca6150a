package usecases

// NotesRenderer turns user-written markdown into sanitized HTML.
type NotesRenderer interface {
	ToHTMLSanitized(source string) (string, error)
}
