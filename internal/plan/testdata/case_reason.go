package kitchen

import "github.com/sirkon/irrelevant"

func drop(sauces []string, reason string) {
	irrelevant.Discard(sauces)
	if len(reason) > 0 {
		irrelevant.Discard(reason, "logged elsewhere")
	}
}

func loose(sauces []string, reason string) {
	irrelevant.Discard(sauces, reason)
}

func nothing() {}
