package main

import "campus-sync/cmd"

func main() {
	cmd.Execute()
}
