package main

import "github.com/jengzang/accident-dashboard-go/cmd/importer/cmd"

func main() {
	cmd.Execute()
}
