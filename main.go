package main

import "github.com/monykiss/schedkit/cmd"

func main() {
	cmd.Execute()
}
