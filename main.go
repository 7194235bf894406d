package main

import "locale-manager/cmd"

func main() {
	cmd.Execute()
}
