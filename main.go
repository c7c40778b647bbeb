package main

import (
	"os"

	"github.com/wifak939/taskboard/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
