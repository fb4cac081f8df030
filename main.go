package main

import (
	_ "go.uber.org/automaxprocs"
	"hotel-booking/cmd"
)

func main() {
	cmd.Start()
}
