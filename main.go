package main

import (
	"embed"

	"github.com/rmorar/banksim/cmd"
)

//go:embed migrations
var migrationsFS embed.FS

func main() {
	cmd.Execute(migrationsFS)
}
