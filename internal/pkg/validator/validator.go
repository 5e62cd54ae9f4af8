package validator

// Validator validates inbound API requests before they reach a use case.
type Validator struct{}

func New() *Validator {
	return &Validator{}
}
