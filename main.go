package main

import "github.com/vibast-solutions/ms-go-session-keys/cmd"

func main() {
	cmd.Execute()
}
