package securevar

import (
	"maps"
	"slices"
	"sync"
)

var (
	builtins   = builtinAlgorithms()
	registry   = maps.Clone(builtins)
	registryMu sync.RWMutex
)

// Register makes an additional algorithm identifier available to every
// Variable and to the Encrypt/Decrypt functions. Built-in identifiers cannot
// be replaced. Registering an existing custom identifier replaces its factory.
func Register(algo Algorithm, factory EncryptorFactory) error {
	if algo == "" || factory == nil {
		return newConfigError(ErrUnknownAlgorithm, algo)
	}
	if _, ok := builtins[algo]; ok {
		return newConfigError(ErrBuiltinAlgorithm, algo)
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	registry[algo] = factory
	return nil
}

// Unregister removes a custom algorithm identifier.
func Unregister(algo Algorithm) error {
	if _, ok := builtins[algo]; ok {
		return newConfigError(ErrBuiltinAlgorithm, algo)
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registry[algo]; !ok {
		return newConfigError(ErrUnknownAlgorithm, algo)
	}
	delete(registry, algo)
	return nil
}

// Algorithms returns every registered identifier in sorted order.
func Algorithms() []Algorithm {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return slices.Sorted(maps.Keys(registry))
}

// lookup returns the factory registered for algo.
func lookup(algo Algorithm) (EncryptorFactory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	factory, ok := registry[algo]
	return factory, ok
}
