package main

import "elgrace_backend/internal/app"

func main() {
	app.Run()
}
