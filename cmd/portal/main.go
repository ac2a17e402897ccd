package main

import (
	"log"

	"portal/internal/api"
)

// @title Corporate Training Portal API
// @version 1.0
// @description REST API корпоративного портала обучения: категории материалов, бизнес-процессы, авторизация по ролям

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	log.Println("App start")
	api.StartServer()
	log.Println("App terminated")
}
