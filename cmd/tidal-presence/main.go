package main

import "github.com/tessro/tidal-presence/internal/cli"

func main() {
	cli.Execute()
}
