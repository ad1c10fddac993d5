package main

import (
	"fmt"

	"github.com/raphi011/git-recycle/internal/output"
	"github.com/raphi011/git-recycle/internal/recycle"
	"github.com/raphi011/git-recycle/internal/ui/progress"
	"github.com/raphi011/git-recycle/internal/ui/static"
	"github.com/raphi011/git-recycle/internal/ui/styles"
)

// terminalReporter prints the outcome of a run to stdout.
type terminalReporter struct {
	out     *output.Printer
	spinner *progress.Spinner // nil when progress is not animated
	dryRun  bool
}

func (r *terminalReporter) Classified(markers []recycle.Marker) {
	if r.spinner != nil {
		r.spinner.Succeed("Analysis done!")
		r.out.Println()
	}

	n := len(markers)
	if r.dryRun {
		r.out.Styledln(styles.SuccessStyle, "%s", countLine(n, "would be created"))
		if n > 0 {
			r.out.Println()
			r.out.Print(static.RenderMarkers(markers))
		}
		return
	}
	r.out.Styledln(styles.SuccessStyle, "%s", countLine(n, "created"))
	r.out.Println()
}

func (r *terminalReporter) Created(m recycle.Marker) {
	r.out.List(styles.SuccessStyle, m.Name)
}

func (r *terminalReporter) Removing(names []string) {
	if len(names) == 0 {
		r.out.Styledln(styles.WarningStyle, "Nothing to delete")
		return
	}
	verb := "removed"
	if r.dryRun {
		verb = "would be removed"
	}
	r.out.Styledln(styles.DangerStyle, "%s", countLine(len(names), verb))
	r.out.Println()
	r.out.List(styles.DangerStyle, names...)
}

// countLine renders "1 branch created:", "2 branches created:" or
// "0 branch created.".
func countLine(n int, verb string) string {
	noun := "branch"
	if n > 1 {
		noun = "branches"
	}
	end := "."
	if n > 0 {
		end = ":"
	}
	return fmt.Sprintf("%d %s %s%s", n, noun, verb, end)
}
