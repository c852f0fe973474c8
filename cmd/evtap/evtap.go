package main

import (
	"fmt"
	"os"

	"github.com/evtap/evtap"
)

func main() {
	cli := &evtap.CLI{}
	if err := cli.Run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
