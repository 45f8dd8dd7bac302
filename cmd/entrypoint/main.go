package main

import (
	// Import the cmd directory with root.go
	"github.com/redjax/weatherwidget/cmd"
)

func main() {
	cmd.Execute()
}
