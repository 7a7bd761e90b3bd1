package main

import "codeinv/cmd"

func main() {
	cmd.Execute()
}
