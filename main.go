package main

import "github.com/SashaBoguraev/mta-tracker/cmd"

func main() {
	cmd.Execute()
}
