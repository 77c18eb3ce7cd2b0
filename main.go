package main

import "product-gifts/cmd"

func main() {
	cmd.Execute()
}
