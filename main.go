package main

import "dlc-checker/cmd"

func main() {
	cmd.Execute()
}
