package main

import "github.com/dusking/opensubtitles-go/cmd/ost/cmd"

func main() {
	cmd.Execute()
}
