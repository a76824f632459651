package main

import (
	"gem-bid-tracker/app"
)

func main() {
	app.Run()
}
