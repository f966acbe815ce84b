package main

import (
	"github.com/philipparndt/gosculpt/internal/app"
)

func main() {
	app.Run()
}
