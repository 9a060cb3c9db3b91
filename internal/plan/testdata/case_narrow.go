package kitchen

import "github.com/sirkon/irrelevant"

type PermissionSet struct{}

func add(a, b int, perms *PermissionSet) int {
	irrelevant.Narrow[*PermissionSet](perms, "adding numbers does not require any privileges")
	return a + b
}

func addStale(a, b int, perms [2]int) int {
	irrelevant.Abort(perms, "adding numbers does not require any privileges", irrelevant.Type[*PermissionSet]())
	return a + b
}
