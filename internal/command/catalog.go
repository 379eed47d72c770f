// Package command defines the closed set of rgit commands and the contract
// every command implementation satisfies.
package command

import (
	"fmt"

	"github.com/samber/lo"
)

// Identifier names one catalog entry. It is a dispatch key only.
type Identifier int

const (
	Init Identifier = iota + 1
	Checkout
	Add
	Commit
	Push
	Merge
	Pull
)

var all = []Identifier{Init, Checkout, Add, Commit, Push, Merge, Pull}

var names = map[Identifier]string{
	Init:     "init",
	Checkout: "checkout",
	Add:      "add",
	Commit:   "commit",
	Push:     "push",
	Merge:    "merge",
	Pull:     "pull",
}

var summaries = map[Identifier]string{
	Init:     "Create an empty rgit repository in the current directory",
	Checkout: "Switch the working tree to another revision",
	Add:      "Stage file contents for the next commit",
	Commit:   "Record staged changes in the repository",
	Push:     "Send local commits to a remote repository",
	Merge:    "Join two development histories together",
	Pull:     "Fetch from a remote repository and merge",
}

var byName = lo.Invert(names)

// All returns every catalog entry in declaration order.
func All() []Identifier {
	return append([]Identifier(nil), all...)
}

// Names returns the command names in declaration order.
func Names() []string {
	return lo.Map(all, func(id Identifier, _ int) string { return id.String() })
}

// Parse maps a command name to its Identifier. Matching is exact and
// case-sensitive.
func Parse(name string) (Identifier, bool) {
	id, ok := byName[name]
	return id, ok
}

// Valid reports whether id is a catalog member.
func (id Identifier) Valid() bool {
	_, ok := names[id]
	return ok
}

func (id Identifier) String() string {
	if n, ok := names[id]; ok {
		return n
	}
	return fmt.Sprintf("Identifier(%d)", int(id))
}

// Summary is the one-line help text for id.
func (id Identifier) Summary() string {
	return summaries[id]
}
