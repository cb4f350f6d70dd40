package service

import "github.com/MKhiriev/go-env-server/models"

// CheckComplete returns m unchanged if every key has a value. Otherwise it
// fails on the first unset key in map order with a [*MissingValueError].
func CheckComplete(m *models.ConfigMap) (*models.ConfigMap, error) {
	for _, entry := range m.Entries() {
		if !entry.Value.IsSet() {
			return nil, &MissingValueError{Key: entry.Key}
		}
	}
	return m, nil
}
