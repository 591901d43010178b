package main

import "github.com/theirongolddev/safespend/cmd"

func main() {
	cmd.Execute()
}
