package main

import "github.com/D3V3LOP3R-wizard/consist/cmd"

func main() {
	cmd.Execute()
}
