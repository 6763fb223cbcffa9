package main

import "github.com/KaramelBytes/hubloom-cli/cmd"

func main() {
	cmd.Execute()
}
