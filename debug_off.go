//go:build !irrelevant_debug

package irrelevant

const debugEnabled = false
