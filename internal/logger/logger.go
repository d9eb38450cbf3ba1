// Package logger adapts zerolog to the narrow logging surface the bootstrap
// components share.
package logger

// Logger is the logging surface bootstrap components depend on. The component
// name identifies the subsystem emitting the entry.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// Nop discards every entry. Used by tests.
type Nop struct{}

func (Nop) Debug(component, message string, fields map[string]interface{})   {}
func (Nop) Info(component, message string, fields map[string]interface{})    {}
func (Nop) Warning(component, message string, fields map[string]interface{}) {}
func (Nop) Error(component string, err error, fields map[string]interface{}) {}
