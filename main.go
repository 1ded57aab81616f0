package main

import (
	"log"
	"net/http"
	"os"
	"soberpath/recovery-api/config"
	"soberpath/recovery-api/middleware"
	"soberpath/recovery-api/routes"
	"soberpath/recovery-api/supabase"
)

func main() {

	config.LoadEnv()
	config.InitLogger()
	supabase.Init()

	mux := http.NewServeMux()
	routes.RegisterAllRoutes(mux)

	handler := middleware.Chain(
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)(mux)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	config.Logger.Info("Server is running on port ", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
