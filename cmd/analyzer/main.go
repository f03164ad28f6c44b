package main

import "socialgraph/interfaces/cli"

func main() {
	cli.Execute()
}
