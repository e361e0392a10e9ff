// Package release compares the running build against the latest published tag.
package release

import (
	"fmt"
	"io"

	"github.com/tcnksm/go-latest"
)

// Source is where release tags are published.
var Source latest.Source = &latest.GithubTag{
	Owner:      "regtools",
	Repository: "regtools",
}

// Check prints a notice to w when a newer version than current exists.
// Network failures are silent; there is nothing the operator can act on.
func Check(w io.Writer, current string) {
	res, err := latest.Check(Source, current)
	if err != nil {
		return
	}
	if res.Outdated {
		fmt.Fprintf(w, "\n%s A new version is available: %s (you have %s)\n", "✨", res.Current, current)
		return
	}
	fmt.Fprintf(w, "You are using the latest version: %s\n", current)
}
