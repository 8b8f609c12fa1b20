package main

import "github.com/aliskhannn/chalisa-kids-bot/cmd/versectl/root"

func main() {
	root.Execute()
}
