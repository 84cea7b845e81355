package main

import "github.com/phrawzty/nhl-emea-friendly-schedule/cmd"

func main() {
	cmd.Execute()
}
