package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/voice-greetings/internal/handler"
)

// Group is one named entry in the route registry: a prefix, the routes
// registered under it, and a name the auth policy can refer to.
type Group struct {
	Name     string
	Prefix   string
	Register func(g *echo.Group)
}

// Registry builds the full route table as a literal, enumerating every route
// group by name. Nothing is discovered at runtime; the whole HTTP surface of
// the service can be read off this one function.
func Registry(u *handler.UserHandler, g *handler.GreetingHandler) []Group {
	return []Group{
		{Name: "user", Prefix: "", Register: func(r *echo.Group) {
			r.GET("/user/:id", u.GetUser)
			r.GET("/users", u.ListUsers)
			r.POST("/user", u.CreateUser)
			r.PUT("/user/:id", u.UpdateUser)
			r.DELETE("/user/:id", u.DeleteUser)
		}},
		{Name: "greeting", Prefix: "", Register: func(r *echo.Group) {
			r.GET("/greetings", g.ListGreetings)
			r.GET("/user/:id/greetings", g.ListUserGreetings)
			r.POST("/user/:id/greeting", g.UploadGreeting)
		}},
		{Name: "api", Prefix: "/api", Register: func(r *echo.Group) {
			r.GET("/users", u.ListUsers)
		}},
	}
}

// RegisterRoutes mounts every group in the registry on e. Groups whose name
// appears in protect get the bearer-token middleware in front of their
// handlers; which groups those are is a deployment decision, not something
// baked into the table above. The health check is always open.
func RegisterRoutes(e *echo.Echo, groups []Group, auth echo.MiddlewareFunc, protect []string) {
	protected := make(map[string]bool, len(protect))
	for _, name := range protect {
		protected[name] = true
	}
	for _, grp := range groups {
		g := e.Group(grp.Prefix)
		if protected[grp.Name] {
			g.Use(auth)
		}
		grp.Register(g)
	}
	e.GET("/healthz", handler.Health)
}
