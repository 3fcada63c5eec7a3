package main

import "annotation-registry.com/annotation-registry/cmd"

func main() {
	cmd.Execute()
}
