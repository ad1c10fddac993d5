package main

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/raphi011/git-recycle/internal/log"
	"github.com/raphi011/git-recycle/internal/recycle"
)

var digitsOnly = regexp.MustCompile(`^\d+$`)

// parseCount returns the reflog window from the positional argument.
// Without one, or when it is not a number, def is used. 0 is a valid,
// empty window.
func parseCount(ctx context.Context, args []string, def int) (int, error) {
	if len(args) == 0 {
		return def, nil
	}
	if !digitsOnly.MatchString(args[0]) {
		log.FromContext(ctx).Printf("Warning: ignoring %q, scanning the last %d reflog entries\n", args[0], def)
		return def, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %s", recycle.ErrInvalidWindow, args[0])
	}
	return n, nil
}
