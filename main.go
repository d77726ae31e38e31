package main

import (
	"github.com/go-imsto/resized/cmd"
)

func main() {
	cmd.Main()
}
