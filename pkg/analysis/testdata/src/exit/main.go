package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("training done")
	os.Exit(1) // want "os.Exit call in main func of main package"
}

func shutdown() {
	os.Exit(2)
}
