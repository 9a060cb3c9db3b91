package irrelevant

type Ignored struct{}

type Qualifier interface {
	holds() bool
}

type qualifier func() bool

func (q qualifier) holds() bool { return q() }

func Discard[V any](v V, reason ...string) Ignored { return Ignored{} }

func Narrow[T any](v T, reason ...string) Ignored { return Ignored{} }

func Warn[V any](v V, reason string, qualifier ...Qualifier) Ignored { return Ignored{} }

func Abort[V any](v V, reason string, qualifier ...Qualifier) Ignored { return Ignored{} }

func Debug[V any](v V, reason string, qualifier ...Qualifier) Ignored { return Ignored{} }

func Type[T any]() Qualifier { return qualifier(func() bool { return true }) }

func Holds[T any](pred func(T) bool) Qualifier { return qualifier(func() bool { return true }) }

func That(cond func() bool) Qualifier { return qualifier(cond) }

func Helper() {}
