// @title           Careero API
// @version         1.0
// @description     Job application tracker: auth, applications, profile, AI document generation.
// @host            localhost:4000
// @BasePath        /api

package main

import (
	"careero_backend/internal/app"

	_ "careero_backend/docs"
)

func main() {
	app.Run()
}
