package main

import "github.com/nguyentranbao-ct/lighting-api/cmd"

func main() {
	cmd.Execute()
}
