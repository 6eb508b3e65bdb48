package main

import (
	"os"

	"github.com/lucsoftsl/alexafit-backoffice-sub000/config"
	"github.com/lucsoftsl/alexafit-backoffice-sub000/routes"
	"github.com/lucsoftsl/alexafit-backoffice-sub000/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	r := routes.SetupRouter()

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	r.Run(addr)
}
