// Package docs GameStore API documentation
package docs

// Swagger documentation info
// @title GameStore API
// @version 1.0
// @description Central API documentation - For all GameStore microservices
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@gamestore.com

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.

// Auth Service Endpoints
// @tag.name auth
// @tag.description Authentication and token lifecycle

// Catalog Service Endpoints
// @tag.name games
// @tag.description Game catalog management
// @tag.name users
// @tag.description User management

// Image Service Endpoints
// @tag.name images
// @tag.description Image upload and storage
