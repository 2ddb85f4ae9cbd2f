// Command queryconv is a linter that reports deferred queries implicitly
// evaluated as in-memory sequences.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/mpyw/queryconv"
)

func main() {
	singlechecker.Main(queryconv.Analyzer)
}
