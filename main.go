package main

import "firecast/cmd"

func main() {
	cmd.Execute()
}
