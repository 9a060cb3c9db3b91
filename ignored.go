package irrelevant

// Ignored marks a value that has been explicitly ignored. It is what a directive returns in place
// of the discarded value.
type Ignored struct{}
