package resolve

import "github.com/portkit/whoport/pkg/model"

// FilterPort returns the records whose local or remote port equals port.
// Every match is kept, one per connection; an empty result is a valid
// outcome, not an error.
func FilterPort(records []model.Record, port int) []model.Record {
	var matched []model.Record
	for _, r := range records {
		if r.LocalPort == port || r.RemotePort == port {
			matched = append(matched, r)
		}
	}
	return matched
}
