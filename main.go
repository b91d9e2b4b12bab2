package main

import "github.com/Haufan/annotator-analysis/cmd"

func main() {
	cmd.Execute()
}
