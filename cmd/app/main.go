package main

import (
	"os"

	"github.com/godiehurtado/nearsy-app-sub000/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
