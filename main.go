package main

import "paysheet/internal/cli"

func main() {
	cli.Main()
}
