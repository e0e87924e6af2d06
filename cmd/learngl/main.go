package main

import "github.com/ThatOtherAndrew/learngl/cmd"

func main() {
	cmd.Execute()
}
