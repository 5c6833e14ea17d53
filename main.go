package main

import "babelcord/cmd"

func main() {
	cmd.Execute()
}
