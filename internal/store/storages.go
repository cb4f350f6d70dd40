package store

// Storages groups the sources the configuration pipeline reads from.
type Storages struct {
	Files FileSource
	Env   EnvSource
}

// NewStorages returns sources backed by the local filesystem and the process
// environment.
func NewStorages() *Storages {
	return &Storages{
		Files: NewOSFileSource(),
		Env:   OSEnv{},
	}
}
