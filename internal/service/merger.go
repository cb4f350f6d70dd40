package service

import (
	"github.com/MKhiriev/go-env-server/internal/store"
	"github.com/MKhiriev/go-env-server/models"
)

// MergeOverrides returns a copy of m in which every key that env knows about
// takes the environment value, even if the file left it unset. The key set
// and order of m are preserved: keys only present in env are never added.
func MergeOverrides(m *models.ConfigMap, env store.EnvSource) *models.ConfigMap {
	merged := models.NewConfigMap()

	for _, entry := range m.Entries() {
		if override, ok := env.Lookup(entry.Key); ok {
			merged.Set(entry.Key, models.Present(override))
			continue
		}
		merged.Set(entry.Key, entry.Value)
	}

	return merged
}
