// Package forms holds the login and registration form checks. Validation
// errors come back keyed by field name; the "" key carries form-level
// messages, matching how the templates display them.
package forms

// Errors maps a field name to its validation message
type Errors map[string]string

// FormField is the key used for errors not tied to a single field
const FormField = ""

func (e Errors) Add(field, message string) {
	if _, taken := e[field]; taken {
		return // keep the first error per field
	}
	e[field] = message
}

func (e Errors) Valid() bool {
	return len(e) == 0
}
