package main

import "github.com/AshishBagdane/ashdoc/cmd"

func main() {
	cmd.Execute()
}
