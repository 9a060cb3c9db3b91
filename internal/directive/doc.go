// Package directive defines the vocabulary shared by the dispatcher, the analyzer and the
// rewrite planner: which functions are directives, which build qualifiers, and what a
// classified directive looks like.
package directive
