package main

import (
	"liveTrading/cmd/app"
)

func main() {
	app.GetApp().LetsGo()
}
