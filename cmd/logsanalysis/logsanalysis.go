package main

import "github.com/Egor213/LogsAnalysis/internal/app"

func main() {
	app.Run()
}
