package main

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"

	"github.com/cides/formadesk/internal/clock"
	"github.com/cides/formadesk/internal/config"
	"github.com/cides/formadesk/internal/migration"
	"github.com/cides/formadesk/internal/observability"
	"github.com/cides/formadesk/internal/scheduler"
	"github.com/cides/formadesk/internal/server"
	"github.com/cides/formadesk/pkg/db"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,

		migration.Module,
		scheduler.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
