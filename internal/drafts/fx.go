package drafts

import (
	"go.uber.org/fx"
)

var Module = fx.Provide(NewValidator)
