package main

import "github.com/inboxsavings/savings-calculator/internal/cli"

func main() {
	cli.Execute()
}
