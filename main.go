package main

import "github.com/Bitlatte/developmental/cmd"

func main() {
	cmd.Execute()
}
