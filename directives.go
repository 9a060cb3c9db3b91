package irrelevant

// Discard ignores v. The reason, when given, is documentation only: nothing is checked and
// nothing is reported.
//
//	irrelevant.Discard(val, "I don't like this value")
func Discard[V any](v V, reason ...string) Ignored {
	return Ignored{}
}

// Narrow ignores v stating its type is T. The type argument must be given explicitly, then a
// change of the value's type that breaks the expectation stops the build:
//
//	irrelevant.Narrow[*PermissionSet](perms, "adding numbers does not require any privileges")
func Narrow[T any](v T, reason ...string) Ignored {
	return Ignored{}
}

// Warn ignores v after checking the optional qualifier. A violated assumption is reported to
// the current [Sink] and execution continues. The reported location is the call site, or the
// first caller outside functions marked with [Helper].
func Warn[V any](v V, reason string, qualifier ...Qualifier) Ignored {
	return enforce(StrengthWarn, v, reason, qualifier)
}

// Abort is [Warn] that panics with the reported [*Violation] when the assumption is false.
// The panic is an ordinary one: a deferred recover up the stack swallows it and execution
// goes on, so Abort only stops the program when nothing recovers. The violation is reported
// to the [Sink] before the panic either way.
func Abort[V any](v V, reason string, qualifier ...Qualifier) Ignored {
	return enforce(StrengthAbort, v, reason, qualifier)
}

// Debug is [Warn] for builds with irrelevant_debug tag. Otherwise neither the check is evaluated
// nor anything is reported.
func Debug[V any](v V, reason string, qualifier ...Qualifier) Ignored {
	if !debugEnabled {
		return Ignored{}
	}

	return enforce(StrengthDebug, v, reason, qualifier)
}
