package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// validate and snapshot have already printed their verdict.
		if !errors.Is(err, errValueRejected) && !errors.Is(err, errSnapshotDrift) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
