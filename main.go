/*
	Copyright 2024 Markus Papenbrock
*/

package main

import "github.com/mpapenbr/gc-segments/cmd"

func main() {
	cmd.Execute()
}
