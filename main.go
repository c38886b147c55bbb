package main

import "attendance-manager/cmd"

func main() {
	cmd.Execute()
}
