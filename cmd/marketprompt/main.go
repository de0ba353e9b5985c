package main

import "github.com/SimoKiihamaki/marketprompt/cmd/marketprompt/cmd"

func main() {
	cmd.Execute()
}
