package main

import "droidbridge/internal/cli"

func main() {
	cli.Execute()
}
