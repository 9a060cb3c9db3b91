package kitchen

import "github.com/sirkon/irrelevant"

type Sauces []string

func (s Sauces) IsEmpty() bool { return len(s) == 0 }

type Drink struct{}

func (d *Drink) Serve(sauces Sauces, count int) int {
	irrelevant.Warn(sauces, "drinks come without sauces", irrelevant.Holds(Sauces.IsEmpty))
	irrelevant.Debug(count, "nothing was counted", irrelevant.That(func() bool { return count == 0 }))
	return 1
}
