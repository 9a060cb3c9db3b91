package irrelevant

import (
	"encoding"
	"fmt"
)

// Strength describes what happens when an assumption turns out to be false.
type Strength int

const (
	strengthInvalid Strength = iota

	// StrengthWarn reports a violation and continues.
	StrengthWarn

	// StrengthAbort reports a violation and panics.
	StrengthAbort

	// StrengthDebug is StrengthWarn in builds with irrelevant_debug tag and a no-op otherwise.
	StrengthDebug
)

var strengthValueMap = map[Strength]string{
	StrengthWarn:  "warn",
	StrengthAbort: "abort",
	StrengthDebug: "debug",
}

func (s Strength) String() string {
	v, ok := strengthValueMap[s]
	if !ok {
		return fmt.Sprintf("invalid(%d)", s)
	}

	return v
}

var (
	_ encoding.TextMarshaler   = Strength(0)
	_ encoding.TextUnmarshaler = (*Strength)(nil)
)

// MarshalText for configs, CLI, etc.
func (s Strength) MarshalText() ([]byte, error) {
	v, ok := strengthValueMap[s]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid Strength(%d)", s)
	}

	return []byte(v), nil
}

// UnmarshalText for setting values with configs, CLI, etc.
func (s *Strength) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range strengthValueMap {
		if v == text {
			*s = k
			return nil
		}
	}

	return fmt.Errorf("unknown enforcement strength %q", text)
}
