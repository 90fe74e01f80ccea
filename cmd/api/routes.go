package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"launchdash.dev/internal/restapi"
	"launchdash.dev/internal/webui"
)

// buildHandler mounts the REST API and the web UI on one router and wraps it
// in the API middleware chain.
func buildHandler(api *restapi.RestAPI, webUI *webui.WebUI) http.Handler {
	router := httprouter.New()
	router.NotFound = api.NotFound()

	api.SetRoutes(router)
	webUI.SetWebUIRoutes(router)

	return api.WithMiddleware(router)
}
