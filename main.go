package main

import "github.com/alexiusacademia/gocog/cmd"

func main() {
	cmd.Execute()
}
