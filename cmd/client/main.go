package main

import "utilibill/cmd/client/cmd"

func main() {
	cmd.Execute()
}
