package main

import (
	"github.com/faisalnotes/siteconf/cmd"
)

func main() {
	cmd.Execute()
}
