package main

import "pxl/cmd"

func main() {
	cmd.Execute()
}
