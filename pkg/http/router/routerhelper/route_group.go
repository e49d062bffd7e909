package routerhelper

import (
	"net/http"
	"path"

	"github.com/julienschmidt/httprouter"
)

// RouteGroup. httprouter routes sharing a path prefix.
type RouteGroup struct {
	router *httprouter.Router
	prefix string
}

func NewRouteGroup(router *httprouter.Router, prefix string) *RouteGroup {
	if prefix == "" || prefix[0] != '/' {
		prefix = "/" + prefix
	}
	return &RouteGroup{router: router, prefix: path.Clean(prefix)}
}

func (g *RouteGroup) NewGroup(prefix string) *RouteGroup {
	return NewRouteGroup(g.router, g.subPath(prefix))
}

func (g *RouteGroup) Handle(method, p string, handle httprouter.Handle) {
	g.router.Handle(method, g.subPath(p), handle)
}

func (g *RouteGroup) Handler(method, p string, handler http.Handler) {
	g.router.Handler(method, g.subPath(p), handler)
}

func (g *RouteGroup) GET(p string, handle httprouter.Handle) {
	g.Handle(http.MethodGet, p, handle)
}

func (g *RouteGroup) POST(p string, handle httprouter.Handle) {
	g.Handle(http.MethodPost, p, handle)
}

func (g *RouteGroup) subPath(p string) string {
	if p == "" {
		return g.prefix
	}
	if p[0] != '/' {
		p = "/" + p
	}
	if g.prefix == "/" {
		return p
	}
	return g.prefix + p
}
