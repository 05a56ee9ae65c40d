//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"net/http/httptest"
	"time"

	"stay-client/cmd/bootstrap"
	"stay-client/cmd/bootstrap/components"
	"stay-client/internal/pkg/config"
	"stay-client/tests/e2e/upstream"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// SharedSuite boots the full application against an in-memory hotel API.
// Each suite gets its own upstream and app; state is reset before every test.
type SharedSuite struct {
	suite.Suite
	Router   *gin.Engine
	Config   config.Config
	Upstream *upstream.Hotel

	server *httptest.Server
	app    *fx.App
}

func (s *SharedSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	s.Upstream = upstream.NewHotel()
	s.server = httptest.NewServer(s.Upstream.Handler())

	s.Config = config.NewTestConfig()
	s.Config.API.BaseURL = s.server.URL + "/api"

	router, app := buildE2EApp(s.Config)
	s.Require().NotNil(router, "router setup failed")
	s.Router = router
	s.app = app
}

func (s *SharedSuite) TearDownSuite() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if s.app != nil {
		if err := s.app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	}
	if s.server != nil {
		s.server.Close()
	}
}

func (s *SharedSuite) SetupTest() {
	s.Upstream.Reset()
}

func buildE2EApp(cfg config.Config) (*gin.Engine, *fx.App) {
	var router *gin.Engine

	app := fx.New(
		fx.Supply(cfg),
		bootstrap.ConfigSections,
		bootstrap.LoggerModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		components.RemoteModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}
	return router, app
}
