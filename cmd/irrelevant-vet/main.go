// Command irrelevant-vet checks explicitly ignored values.
//
// It runs standalone over package patterns or as a vet tool:
//
//	irrelevant-vet ./...
//	go vet -vettool=$(which irrelevant-vet) -config=irrelevant.yaml ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/sirkon/irrelevant/analyzer"
)

func main() {
	singlechecker.Main(analyzer.Analyzer)
}
