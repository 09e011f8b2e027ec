package main

import "github.com/atikulmunna/fauxlog/internal/cmd"

func main() {
	cmd.Execute()
}
