package main

import "github.com/EmirMurat6606/SuguruMeister/cmd"

func main() {
	cmd.Execute()
}
