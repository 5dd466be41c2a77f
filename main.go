package main

import "github.com/subjectivelabs/sj/cmd"

func main() {
	cmd.Execute()
}
