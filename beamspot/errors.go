package beamspot

import "fmt"

// E maps parameter names to validation errors.
type E map[string]error

func (e E) Error() string {
	return fmt.Sprintf("%+v", map[string]error(e))
}
