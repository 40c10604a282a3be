// Package marshaller serializes typed documents.
package marshaller

// Marshaller converts between a model and its text representation.
type Marshaller[T any] interface {
	Marshal(model T) (string, error)
	Unmarshal(data []byte, model *T) error
}
