package assume

import "github.com/sirkon/irrelevant"

// Ignore is a project wrapper over a warning directive.
func Ignore[V any](v V, reason string, q ...irrelevant.Qualifier) irrelevant.Ignored {
	irrelevant.Helper()
	return irrelevant.Warn(v, reason, q...)
}

// Empty is a project qualifier.
func Empty[T ~[]E, E any](v T) irrelevant.Qualifier {
	return irrelevant.That(func() bool { return len(v) == 0 })
}
