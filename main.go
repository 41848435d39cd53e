package main

import "skinfolio/cmd"

func main() {
	cmd.Execute()
}
