package main

import "github.com/supply-dashboard/supply-dashboard-backend/src/cli"

func main() {
	cli.Execute()
}
