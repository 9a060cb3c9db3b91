package kitchen

import (
	"fmt"

	"github.com/sirkon/irrelevant"
)

type PermissionSet struct {
	admin bool
}

type Context struct {
	Perms PermissionSet
}

type Sauce string

type Sauces []Sauce

func (s Sauces) IsEmpty() bool { return len(s) == 0 }

func isEmpty(s Sauces) bool { return len(s) == 0 }

func add(a, b int, perms *PermissionSet) int {
	irrelevant.Narrow[*PermissionSet](perms, "adding numbers does not require any privileges")
	return a + b
}

func addChecked(a, b int, perms *PermissionSet) int {
	irrelevant.Warn(perms, "adding numbers does not require any privileges", irrelevant.Type[*PermissionSet]())
	if perms != nil && perms.admin { // want `perms was discarded at kitchen.go:\d+:\d+: adding numbers does not require any privileges` `perms was discarded at kitchen.go`
		return 0
	}
	return a + b
}

func addStale(a, b int, perms [2]int) int {
	irrelevant.Abort(perms, "adding numbers does not require any privileges", irrelevant.Type[*PermissionSet]()) // want `stale type assumption: perms is \[2\]int, discard expects \*kitchen.PermissionSet`
	return a + b
}

func serveDrink(ctx *Context, sauces Sauces) string {
	irrelevant.Warn(sauces, "drinks come without sauces", irrelevant.Holds(Sauces.IsEmpty))
	_ = ctx.Perms
	return fmt.Sprint(len(sauces)) // want `sauces was discarded at kitchen.go:\d+:\d+: drinks come without sauces`
}

func serveMeal(ctx *Context, sauces Sauces) string {
	irrelevant.Discard(ctx)
	var res string
	for _, s := range sauces {
		res += string(s)
	}
	return res + fmt.Sprint(ctx) // want `ctx was discarded at kitchen.go:\d+:\d+$`
}

func serveSnack(sauces Sauces, count int) int {
	if count == 0 {
		irrelevant.Debug(sauces, "nothing to season", irrelevant.Holds(isEmpty))
		return 0
	}

	return len(sauces) + count
}

func shadowed(sauces Sauces) int {
	irrelevant.Discard(sauces, "a fresh set is used")
	{
		sauces := Sauces{"ketchup"}
		return len(sauces)
	}
}

func mismatch(count int) {
	irrelevant.Warn(count, "nothing was counted", irrelevant.Holds(isEmpty)) // want `predicate isEmpty takes kitchen.Sauces, count is int`
}

func loose(sauces Sauces, reason string) {
	irrelevant.Discard(sauces[0])      // want `discard target must be a variable named by an identifier`
	irrelevant.Discard(sauces, reason) // want `discard reason must be a string literal`
}

func twice(sauces Sauces) {
	irrelevant.Warn(sauces, "no sauces", irrelevant.Holds(Sauces.IsEmpty), irrelevant.That(func() bool { return true })) // want `discard takes at most one assumption, got 2`
}
