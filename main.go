package main

import "github.com/jsphweid/tunepack/cmd"

func main() {
	cmd.Execute()
}
