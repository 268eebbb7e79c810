package main

import "github.com/LavenderBridge/problemset/cmd"

func main() {
	cmd.Execute()
}
