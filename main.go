package main

import "github.com/golangdaddy/nascar/cmd"

func main() {
	cmd.Execute()
}
