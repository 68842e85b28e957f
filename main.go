package main

import "github.com/naka-gawa/repo-stats/cmd"

func main() {
	cmd.Execute()
}
