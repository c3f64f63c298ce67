package main

import "github.com/NVIDIA/inference-template/pkg/cli"

func main() {
	cli.Execute()
}
