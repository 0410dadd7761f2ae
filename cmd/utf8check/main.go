package main

import "github.com/cosql/strictutf8/cmd/utf8check/cmd"

func main() {
	cmd.Execute()
}
