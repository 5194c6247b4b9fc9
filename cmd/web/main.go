package main

import "kirismor_backend/internal/app"

func main() {
	app.Run()
}
