package main

import "github.com/philipparndt/mcnpgeom/internal/cmd"

func main() {
	cmd.Parse()
}
