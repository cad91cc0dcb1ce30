package handler

import (
	"net/http"
	"sync"

	"tudu/config"
	"tudu/di"
	"tudu/shared/logger"
	"tudu/shared/timezone"
	transport "tudu/transport/http"
)

var (
	server *transport.HTTP
	once   sync.Once
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg.Server.Env)
		logger.SetLogLevel(cfg)
		timezone.Init(cfg.App.Timezone)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
