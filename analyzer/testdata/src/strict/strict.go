package strict

import (
	"kit/assume"

	"github.com/sirkon/irrelevant"
)

type Sauces []string

func serve(sauces Sauces, count int, err error) int {
	irrelevant.Discard(err)                                     // want `discard of err does not say why it is irrelevant`
	irrelevant.Narrow[any](count, "counting is done elsewhere") // want `stale type assumption: count is int, discard expects exactly any`
	return len(sauces)
}

func wrapped(sauces Sauces, count int) int {
	assume.Ignore(sauces, "drinks come without sauces", irrelevant.That(func() bool { return count == 0 })) // want `assumption does not refer to discarded sauces`
	return count + len(sauces)                                                                              // want `sauces was discarded at strict.go:\d+:\d+: drinks come without sauces`
}

func qualified(sauces Sauces) {
	assume.Ignore(sauces, "drinks come without sauces", assume.Empty(sauces))
}
