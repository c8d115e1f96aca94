package main

import (
	"github.com/harrybrwn/editgrades/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		cmd.Stop(err)
	}
}
