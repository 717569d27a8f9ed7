package system

import "os"

// Environment is the interface for the environment.
type Environment interface {
	// Get gets the value of the environment variable with the given key.
	Get(key string) (string, bool)
	// UserCacheDir returns the default root directory for user cached data.
	UserCacheDir() (string, error)
	// Getwd returns the current working directory.
	Getwd() (string, error)
}

// env is the default implementation of the Environment interface.
type env struct{}

// NewEnvironment creates a new Environment.
func NewEnvironment() Environment {
	return &env{}
}

// Get gets the value of the environment variable with the given key.
func (e *env) Get(key string) (string, bool) {
	return os.LookupEnv(key)
}

// UserCacheDir returns the default root directory for user cached data.
func (e *env) UserCacheDir() (string, error) {
	return os.UserCacheDir()
}

// Getwd returns the current working directory.
func (e *env) Getwd() (string, error) {
	return os.Getwd()
}
