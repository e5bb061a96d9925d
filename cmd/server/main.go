package main

import (
	"os"

	"github.com/Eluskie/Orlando/internal/app"
)

// @title           Dobra API
// @version         1.0
// @description     Brand identity assistant backend: streaming chat, style extraction and image generation.
// @BasePath        /api
func main() {
	os.Exit(app.Run())
}
