package main

import "github.com/andresmejia3/frames/cmd"

func main() {
	cmd.Execute()
}
