package main

import "github.com/oshokin/xa-init/cmd/xa-init/cmd"

func main() {
	cmd.Execute()
}
