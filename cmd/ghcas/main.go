package main

import "github.com/aweris/ghcas/cmd/ghcas/cmd"

func main() {
	cmd.Execute()
}
