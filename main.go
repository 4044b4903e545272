package main

import "github.com/keyhound/keyhound/cmd/keyhound"

func main() {
	keyhound.Execute()
}
