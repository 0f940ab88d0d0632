// Command kitchen runs the kitchen tracker: a terminal app with a calorie
// log, a grocery list, a pantry expiry tracker and a weekly meal planner.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
