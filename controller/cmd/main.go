package main

import (
	"fmt"
	"os"

	"github.com/anubhaparashar/mcp2/controller/cmd/contexttool"
	"github.com/anubhaparashar/mcp2/controller/cmd/eventbus"
	"github.com/anubhaparashar/mcp2/controller/cmd/registry"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("expected a subcommand")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "registry":
		registry.Main(os.Args[2:])
	case "contexttool":
		contexttool.Main(os.Args[2:])
	case "eventbus":
		eventbus.Main(os.Args[2:])
	default:
		fmt.Printf("unknown subcommand: %s", os.Args[1])
		os.Exit(1)
	}
}
