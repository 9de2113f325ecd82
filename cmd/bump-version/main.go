package main

import "github.com/oshokin/bump-version/cmd/bump-version/cmd"

func main() {
	cmd.Execute()
}
