package routes

import (
	"vaultlist/api/handler"

	"github.com/labstack/echo/v4"
)

type Router struct {
	Echo     *echo.Echo
	Waitlist *handler.WaitlistHandler
}

func NewRouter(e *echo.Echo, waitlistHandler *handler.WaitlistHandler) *Router {
	return &Router{
		Echo:     e,
		Waitlist: waitlistHandler,
	}
}

func (r *Router) RegisterRoutes() {
	e := r.Echo

	e.POST("/waitlist/signup", r.Waitlist.Signup)
	e.GET("/waitlist/verify", r.Waitlist.Verify)
	e.GET("/waitlist/count", r.Waitlist.Count)
}
