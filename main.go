package main

import "novel-hub/cmd"

func main() {
	cmd.Execute()
}
