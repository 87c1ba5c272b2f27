/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/carljonathan/fccExTracker/cmd"

func main() {
	cmd.Execute()
}
