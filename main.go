package main

import "shiftlog/cmd"

func main() {
	cmd.Execute()
}
