package generator

import "fmt"

// GeneratorError wraps an error with the generator that produced it.
type GeneratorError struct {
	Generator string
	Err       error
}

func (e *GeneratorError) Error() string {
	return fmt.Sprintf("%s: %v", e.Generator, e.Err)
}

func (e *GeneratorError) Unwrap() error {
	return e.Err
}
