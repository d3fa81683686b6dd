// Command knapsack solves and generates 0/1 knapsack instances.
//
//	knapsack solve problems.dat [reference.dat] --method pruning
//	knapsack generate --count 50 --size 20 --seed 7 > problems.dat
//	knapsack methods
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
