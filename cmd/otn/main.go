package main

import "github.com/OpenTraceLab/OpenTraceNetlist/cmd/otn/cmd"

func main() {
	cmd.Execute()
}
