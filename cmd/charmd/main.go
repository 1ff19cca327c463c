package main

import "github.com/dojanjanjan/charm-reservations/cmd"

func main() {
	cmd.Execute()
}
