package server

import "github.com/gofiber/fiber/v2"

// ListEndpoints handles GET / and returns the static route catalog.
func (s *Server) ListEndpoints(c *fiber.Ctx) error {
	endpoints := []fiber.Map{
		{"url": "/", "description": "Root endpoint"},
		{"url": "/register", "description": "Register a new user"},
		{"url": "/login", "description": "User login"},
		{"url": "/posts", "description": "Create and list posts"},
		{"url": "/posts/{id}", "description": "Read, update, and delete a post"},
		{"url": "/comments", "description": "Create and list comments"},
		{"url": "/comments/{id}", "description": "Read, update, and delete a comment"},
	}
	return c.JSON(fiber.Map{"endpoints": endpoints})
}
