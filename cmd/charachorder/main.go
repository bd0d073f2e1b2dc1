/*
Copyright © 2025 CharaChorder
*/
package main

import "github.com/CharaChorder/charachorder-go/cmd"

func main() {
	cmd.Execute()
}
