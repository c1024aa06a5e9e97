package main

import "github.com/rajatvats23/swizzleFENg19-sub001/internal/cli"

func main() {
	cli.Execute()
}
