package docs

// @title           Tutor Dashboard API
// @version         1.0
// @description     Reporting backend for tutoring session data. Serves aggregated income and hour reports computed from a cached spreadsheet dataset, with admin endpoints for cache management.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
