package main

import (
	_ "condado_dog/docs"
	"condado_dog/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Condado Dog Quotes API
// @version         1.0
// @description     Boarding quote service (tiered diárias + daycare plan discounts) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
