package handler

import (
	bidsdomain "projectconnect-go/internal/domain/bids"
	projectsdomain "projectconnect-go/internal/domain/projects"
	userdomain "projectconnect-go/internal/domain/user"
	authhandler "projectconnect-go/internal/transport/httpserver/handler/auth"
	bidshandler "projectconnect-go/internal/transport/httpserver/handler/bids"
	commonhandler "projectconnect-go/internal/transport/httpserver/handler/common"
	projectshandler "projectconnect-go/internal/transport/httpserver/handler/projects"
	"projectconnect-go/pkg/logger"
)

type Handlers struct {
	Common   *commonhandler.Handlers
	Auth     *authhandler.Handlers
	Projects *projectshandler.Handlers
	Bids     *bidshandler.Handlers
}

func New(users *userdomain.Service, projects *projectsdomain.Service, bids *bidsdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Common:   commonhandler.New(log),
		Auth:     authhandler.New(users, log),
		Projects: projectshandler.New(projects, log),
		Bids:     bidshandler.New(bids, log),
	}
}
