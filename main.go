package main

import "github.com/chrisdamba/kitchenboard/cmd"

func main() {
	cmd.Execute()
}
