package main

import "github.com/ValentinKolb/tinycoll/cmd"

func main() {
	cmd.Execute()
}
