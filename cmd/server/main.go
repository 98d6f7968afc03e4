package main

import "github.com/placementiq/placement-api/cmd/server/cmd"

func main() {
	cmd.Execute()
}
