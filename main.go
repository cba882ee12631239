package main

import "student-registry/cmd"

func main() {
	cmd.Execute()
}
