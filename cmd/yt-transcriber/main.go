package main

import "github.com/gxwechsler/yt-transcriber/internal/adapters/cli"

func main() {
	cli.Execute()
}
