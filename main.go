package main

import "github.com/gordonmaloney/testify-admin/cmd"

func main() {
	cmd.Execute()
}
