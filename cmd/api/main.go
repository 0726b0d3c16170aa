package main

import (
	_ "machine_shop_suite/docs"
	"machine_shop_suite/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Machine Shop Suite API
// @version         1.0
// @description     3D printing quote engine: pricing, signed quote lifecycle and slicing.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin token.

func main() {
	routes.Run()
}
