package webui

import (
	"io/fs"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (webUI *WebUI) SetWebUIRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/", webUI.dashboardHandler)
	router.HandlerFunc(http.MethodGet, "/debug/", webUI.debugIndexHandler)

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	router.ServeFiles("/static/*filepath", http.FS(static))
}
