package handler

import (
	"net/http"
	"sync"

	"latina/config"
	"latina/di"
	"latina/shared/logger"
)

var (
	site     http.Handler
	siteOnce sync.Once
)

// Handler is the serverless entrypoint. The site is built on the first
// request and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	siteOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.SetLogLevel(cfg)

		site = di.InitializeService()
	})

	site.ServeHTTP(w, r)
}
