package main

import (
	"fmt"
	"strconv"

	"github.com/san-kum/arrayviz/internal/demo"
	"github.com/san-kum/arrayviz/internal/player"
)

// stepArg resolves an optional command argument to a 1-based step. The
// argument is either a step number or an operation name; def is used when
// no argument was given.
func stepArg(c *demo.Catalog, args []string, def int) (int, error) {
	if len(args) == 0 {
		return def, nil
	}
	return resolveStep(c, args[0])
}

func resolveStep(c *demo.Catalog, arg string) (int, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > c.Len() {
			return 0, fmt.Errorf("%w: %d (1-%d)", player.ErrStepOutOfRange, n, c.Len())
		}
		return n, nil
	}
	i, err := c.Lookup(arg)
	if err != nil {
		return 0, err
	}
	return i + 1, nil
}
