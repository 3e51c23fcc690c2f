package main

import (
	"os"

	"github.com/AnandvPrajapati/Mission-1-The-Empathetic-Code-Reviewer/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
